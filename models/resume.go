package models

import (
	"database/sql"
	"encoding/json"
	"time"
)

// Resume is a stored parse result. Parsed holds the full structured record
// as JSON; Confidence is denormalized for cheap listing.
type Resume struct {
	ID         string          `json:"id"`
	UserID     int             `json:"user_id"`
	Filename   string          `json:"filename"`
	Parsed     json.RawMessage `json:"parsed"`
	Confidence int             `json:"confidence"`
	CreatedAt  time.Time       `json:"created_at"`
}

type ResumeModel struct {
	DB *sql.DB
}

func NewResumeModel(db *sql.DB) *ResumeModel {
	return &ResumeModel{DB: db}
}

func (m *ResumeModel) Save(id string, userID int, filename string, parsed json.RawMessage, confidence int) error {
	query := `
		INSERT INTO resumes (id, user_id, filename, parsed, confidence, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`
	_, err := m.DB.Exec(query, id, userID, filename, parsed, confidence)
	return err
}

func (m *ResumeModel) GetLatestByUserID(userID int) (*Resume, error) {
	resume := &Resume{}
	query := `
		SELECT id, user_id, filename, parsed, confidence, created_at
		FROM resumes WHERE user_id = $1
		ORDER BY created_at DESC LIMIT 1
	`
	err := m.DB.QueryRow(query, userID).Scan(
		&resume.ID, &resume.UserID, &resume.Filename, &resume.Parsed, &resume.Confidence, &resume.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return resume, nil
}

func (m *ResumeModel) ListByUserID(userID int) ([]Resume, error) {
	resumes := []Resume{}
	query := `
		SELECT id, user_id, filename, confidence, created_at
		FROM resumes WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := m.DB.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var r Resume
		if err := rows.Scan(&r.ID, &r.UserID, &r.Filename, &r.Confidence, &r.CreatedAt); err != nil {
			return nil, err
		}
		resumes = append(resumes, r)
	}
	return resumes, rows.Err()
}

func (m *ResumeModel) GetByID(id string, userID int) (*Resume, error) {
	resume := &Resume{}
	query := `
		SELECT id, user_id, filename, parsed, confidence, created_at
		FROM resumes WHERE id = $1 AND user_id = $2
	`
	err := m.DB.QueryRow(query, id, userID).Scan(
		&resume.ID, &resume.UserID, &resume.Filename, &resume.Parsed, &resume.Confidence, &resume.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return resume, nil
}

func (m *ResumeModel) Delete(id string, userID int) error {
	res, err := m.DB.Exec(`DELETE FROM resumes WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (m *ResumeModel) UpdateParsed(id string, userID int, parsed json.RawMessage, confidence int) error {
	res, err := m.DB.Exec(`
		UPDATE resumes SET parsed = $1, confidence = $2
		WHERE id = $3 AND user_id = $4
	`, parsed, confidence, id, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
