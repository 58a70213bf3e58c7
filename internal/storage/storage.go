// Package storage persists firing sessions and their resolved impacts in a
// SQLite database.
package storage

import (
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	armorcalc "github.com/gehtsoft-usa/go_armorcalc"
)

// Session groups the impacts of one firing sequence against one target.
type Session struct {
	gorm.Model
	Name           string `json:"name"`
	AmmunitionName string `json:"ammunitionName"`
	ArmorName      string `json:"armorName"`
	Impacts        []ImpactRecord
	DamageStates   []DamageRecord
}

// ImpactRecord is one resolved impact.
type ImpactRecord struct {
	gorm.Model
	SessionID          uint    `json:"sessionId"`
	RangeM             float64 `json:"range"`
	ImpactAngleDeg     float64 `json:"impactAngle"`
	ImpactVelocity     float64 `json:"impactVelocity"`
	BasePenetration    float64 `json:"basePenetration"`
	FinalPenetration   float64 `json:"finalPenetration"`
	EffectiveThickness float64 `json:"effectiveThickness"`
	OvermatchMM        float64 `json:"overmatch"`
	Penetrated         bool    `json:"penetrated"`
	DegradedStages     string  `json:"degradedStages"`
}

// DamageRecord is the armor condition after an impact was applied.
type DamageRecord struct {
	gorm.Model
	SessionID          uint    `json:"sessionId"`
	X                  float64 `json:"x"`
	Y                  float64 `json:"y"`
	EnergyJoules       float64 `json:"energyJoules"`
	Penetrated         bool    `json:"penetrated"`
	IntegrityPercent   float64 `json:"integrityPercent"`
	ThicknessRemaining float64 `json:"thicknessRemaining"`
	Status             string  `json:"status"`
}

// Store wraps the session database.
type Store struct {
	db  *gorm.DB
	log zerolog.Logger
}

// Open opens (or creates) the session database at path. An empty path opens
// an in-memory database.
func Open(path string, log zerolog.Logger) (*Store, error) {
	dsn := path
	if dsn == "" {
		dsn = "file::memory:?cache=shared"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open session DB: %v", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = MEMORY;",
		"PRAGMA synchronous = OFF;",
		"PRAGMA temp_store = MEMORY;",
	}
	for _, pragma := range pragmas {
		if err := db.Exec(pragma).Error; err != nil {
			return nil, fmt.Errorf("error setting PRAGMA: %v", err)
		}
	}

	if err := db.AutoMigrate(&Session{}, &ImpactRecord{}, &DamageRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %v", err)
	}

	log.Info().Str("path", dsn).Msg("Session DB ready")
	return &Store{db: db, log: log}, nil
}

// StartSession creates a new session row and returns its ID.
func (s *Store) StartSession(name, ammunitionName, armorName string) (uint, error) {
	session := Session{
		Name:           name,
		AmmunitionName: ammunitionName,
		ArmorName:      armorName,
	}
	if err := s.db.Create(&session).Error; err != nil {
		return 0, fmt.Errorf("failed to create session: %v", err)
	}
	return session.ID, nil
}

// RecordImpact stores one resolved impact under the session.
func (s *Store) RecordImpact(sessionID uint, outcome armorcalc.ImpactOutcome) error {
	record := ImpactRecord{
		SessionID:          sessionID,
		RangeM:             outcome.RangeM,
		ImpactAngleDeg:     outcome.ImpactAngleDeg,
		ImpactVelocity:     outcome.ImpactVelocity,
		BasePenetration:    outcome.BasePenetration,
		FinalPenetration:   outcome.FinalPenetration,
		EffectiveThickness: outcome.EffectiveThickness,
		OvermatchMM:        outcome.OvermatchMM,
		Penetrated:         outcome.Penetrates,
		DegradedStages:     strings.Join(outcome.DegradedStages, ","),
	}
	if err := s.db.Create(&record).Error; err != nil {
		return fmt.Errorf("failed to record impact: %v", err)
	}
	return nil
}

// RecordDamage stores the armor condition after a damage event was applied.
func (s *Store) RecordDamage(sessionID uint, event armorcalc.DamageEvent, summary armorcalc.DamageSummary) error {
	record := DamageRecord{
		SessionID:          sessionID,
		X:                  event.X,
		Y:                  event.Y,
		EnergyJoules:       event.EnergyJoules,
		Penetrated:         event.Penetrated,
		IntegrityPercent:   summary.Condition.IntegrityPercent,
		ThicknessRemaining: summary.Condition.ThicknessRemaining,
		Status:             armorcalc.StatusName(summary.Status),
	}
	if err := s.db.Create(&record).Error; err != nil {
		return fmt.Errorf("failed to record damage: %v", err)
	}
	return nil
}

// SessionImpacts returns the impacts of a session in firing order.
func (s *Store) SessionImpacts(sessionID uint) ([]ImpactRecord, error) {
	var records []ImpactRecord
	err := s.db.Where("session_id = ?", sessionID).Order("id").Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load impacts: %v", err)
	}
	return records, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
