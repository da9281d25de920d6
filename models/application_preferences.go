package models

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

// ApplicationPreferences holds a user's job-search preferences, matched
// against incoming job listings by the scorer.
type ApplicationPreferences struct {
	ID            int       `json:"id"`
	UserID        int       `json:"user_id"`
	DesiredTitles []string  `json:"desired_titles"`
	Skills        []string  `json:"skills"`
	Locations     []string  `json:"locations"`
	RemoteOK      bool      `json:"remote_ok"`
	SalaryMin     int       `json:"salary_min"`
	SalaryMax     int       `json:"salary_max"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ApplicationPreferencesModel struct {
	DB *sql.DB
}

func NewApplicationPreferencesModel(db *sql.DB) *ApplicationPreferencesModel {
	return &ApplicationPreferencesModel{DB: db}
}

func (m *ApplicationPreferencesModel) GetByUserID(userID int) (*ApplicationPreferences, error) {
	prefs := &ApplicationPreferences{}
	query := `
		SELECT id, user_id, desired_titles, skills, locations, remote_ok, salary_min, salary_max, updated_at
		FROM application_preferences WHERE user_id = $1
	`
	err := m.DB.QueryRow(query, userID).Scan(
		&prefs.ID, &prefs.UserID,
		pq.Array(&prefs.DesiredTitles), pq.Array(&prefs.Skills), pq.Array(&prefs.Locations),
		&prefs.RemoteOK, &prefs.SalaryMin, &prefs.SalaryMax, &prefs.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return prefs, nil
}

func (m *ApplicationPreferencesModel) Upsert(prefs *ApplicationPreferences) error {
	query := `
		INSERT INTO application_preferences
			(user_id, desired_titles, skills, locations, remote_ok, salary_min, salary_max, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			desired_titles = EXCLUDED.desired_titles,
			skills = EXCLUDED.skills,
			locations = EXCLUDED.locations,
			remote_ok = EXCLUDED.remote_ok,
			salary_min = EXCLUDED.salary_min,
			salary_max = EXCLUDED.salary_max,
			updated_at = NOW()
	`
	_, err := m.DB.Exec(query,
		prefs.UserID,
		pq.Array(prefs.DesiredTitles), pq.Array(prefs.Skills), pq.Array(prefs.Locations),
		prefs.RemoteOK, prefs.SalaryMin, prefs.SalaryMax,
	)
	return err
}
