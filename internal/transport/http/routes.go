package http

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bimaru-solver/internal/core"
	"bimaru-solver/internal/puzzle"
	"bimaru-solver/internal/solver"
	"bimaru-solver/pkg/config"
)

var cfg *config.Config

// RegisterRoutes wires the solve/health endpoints onto r.
func RegisterRoutes(r *gin.Engine, c *config.Config) {
	cfg = c

	r.GET("/health", healthHandler)

	api := r.Group("/api")
	{
		api.POST("/solve", solveHandler)
		api.GET("/solve/:token", fetchHandler)
	}
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func solveHandler(c *gin.Context) {
	var p core.Puzzle
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	board, err := puzzle.Build(&p)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := solver.NewDriver(board).Solve()
	coreResult := puzzle.ToCoreResult(result)

	now := time.Now()
	token, err := createToken(cfg.TokenSecret, SolveReceipt{
		Result:    coreResult,
		IssuedAt:  now,
		ExpiresAt: now.Add(receiptTTL),
	})
	if err != nil {
		log.Printf("solve: failed to sign receipt: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign receipt"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": coreResult, "token": token})
}

func fetchHandler(c *gin.Context) {
	token := c.Param("token")
	receipt, err := verifyToken(cfg.TokenSecret, token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": receipt.Result})
}
