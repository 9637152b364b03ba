package controllers

import (
	"context"
	"time"

	"studybuddy/studybuddy/services/psychology"
	"studybuddy/studybuddy/sources/psql/dao"
	"studybuddy/studybuddy/sources/psql/models"

	"github.com/google/uuid"
)

type PsychologyController struct {
	engine        *psychology.Engine
	assessmentDAO *dao.AssessmentDAO
}

func NewPsychologyController(engine *psychology.Engine, assessmentDAO *dao.AssessmentDAO) *PsychologyController {
	return &PsychologyController{engine: engine, assessmentDAO: assessmentDAO}
}

type SubmitResult struct {
	Test              *models.Assessment `json:"test"`
	StressLevel       string             `json:"stressLevel"`
	Score             int                `json:"score"`
	Recommendations   []string           `json:"recommendations"`
	MotivationalQuote string             `json:"motivationalQuote"`
}

func (c *PsychologyController) Submit(ctx context.Context, userID uuid.UUID, responses map[string]string) (*SubmitResult, error) {
	assessment, err := c.engine.Submit(ctx, userID, time.Now(), responses)
	if err != nil {
		return nil, err
	}
	return &SubmitResult{
		Test:              assessment,
		StressLevel:       assessment.StressLevel,
		Score:             assessment.Score,
		Recommendations:   psychology.RecommendationsFor(assessment.StressLevel),
		MotivationalQuote: assessment.MotivationalQuote,
	}, nil
}

func (c *PsychologyController) TodayStatus(ctx context.Context, userID uuid.UUID) (*psychology.TodayStatus, error) {
	return c.engine.TodayStatus(ctx, userID, time.Now())
}

func (c *PsychologyController) History(ctx context.Context, userID uuid.UUID, limit int) ([]models.Assessment, error) {
	return c.engine.History(ctx, userID, limit)
}

func (c *PsychologyController) Trends(ctx context.Context, userID uuid.UUID, days int) ([]psychology.TrendPoint, error) {
	return c.engine.Trends(ctx, userID, time.Now(), days)
}

const adminAssessmentLimit = 100

// AllUsersData is the admin view of recent assessments across users.
func (c *PsychologyController) AllUsersData(ctx context.Context) ([]models.Assessment, error) {
	return c.assessmentDAO.ListAllRecent(ctx, adminAssessmentLimit)
}
