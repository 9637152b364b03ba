package controllers

import (
	"context"

	"gorm.io/gorm"
)

type HealthController struct {
	db *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{db: db}
}

type HealthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

func (c *HealthController) Check(ctx context.Context) HealthStatus {
	status := HealthStatus{Status: "ok", Database: "ok"}
	sqlDB, err := c.db.DB()
	if err != nil || sqlDB.PingContext(ctx) != nil {
		status.Status = "degraded"
		status.Database = "unreachable"
	}
	return status
}
