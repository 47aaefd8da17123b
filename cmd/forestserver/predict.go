package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type predictReq struct {
	Features []float64 `json:"features" binding:"required,min=1"`
}

func handlePredict(c *gin.Context) {
	var req predictReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	pred := forest.Predict(req.Features)
	prob := forest.PredictProbability(req.Features)
	c.JSON(http.StatusOK, gin.H{"predicted": pred, "probability": prob})
}
