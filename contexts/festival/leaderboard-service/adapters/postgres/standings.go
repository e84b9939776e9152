package postgresadapter

import (
	"context"
	"time"

	"gorm.io/gorm"

	"festboard/contexts/festival/leaderboard-service/ports"
)

const scopeOverall = "overall"

type standingRow struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement"`
	Scope     string    `gorm:"column:scope;index:idx_standings_scope_rank"`
	Rank      int       `gorm:"column:rank;index:idx_standings_scope_rank"`
	Team      string    `gorm:"column:team"`
	Score     int       `gorm:"column:score"`
	Revision  int64     `gorm:"column:revision"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (standingRow) TableName() string { return "festival_standings" }

// Repository materializes leaderboards as flat rows, one per team per
// scope. Scope is "overall" or a category name. Each projection run
// replaces the whole table.
type Repository struct {
	db *gorm.DB
}

var _ ports.StandingsWriter = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(&standingRow{})
}

func (r *Repository) ReplaceStandings(ctx context.Context, revision int64, boards ports.Leaderboards) error {
	now := time.Now().UTC()

	rows := make([]standingRow, 0, len(boards.Overall)*2)
	rows = appendScope(rows, scopeOverall, boards.Overall, revision, now)
	for name, bucket := range boards.ByCategory {
		rows = appendScope(rows, name, bucket, revision, now)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&standingRow{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

func appendScope(rows []standingRow, scope string, standings []ports.Standing, revision int64, now time.Time) []standingRow {
	for i, standing := range standings {
		rows = append(rows, standingRow{
			Scope:     scope,
			Rank:      i + 1,
			Team:      standing.Team,
			Score:     standing.Score,
			Revision:  revision,
			UpdatedAt: now,
		})
	}
	return rows
}
