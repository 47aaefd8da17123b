package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"forestlab/forest/metrics"
)

type scoreRow struct {
	Features []float64 `json:"features" binding:"required,min=1"`
	Label    int        `json:"label" binding:"oneof=0 1"`
}

type scoreReq struct {
	Rows []scoreRow `json:"rows" binding:"required,min=1,dive"`
}

func handleScore(c *gin.Context) {
	var req scoreReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	predicted := make([]int, len(req.Rows))
	actual := make([]int, len(req.Rows))
	for i, row := range req.Rows {
		predicted[i] = forest.Predict(row.Features)
		actual[i] = row.Label
	}

	cm, err := metrics.Confusion(predicted, actual)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"confusion": cm,
		"accuracy":  cm.Accuracy(),
		"precision": cm.Precision(),
		"recall":    cm.Recall(),
		"f1":        cm.F1(),
	})
}
