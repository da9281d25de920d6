package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resumematch/models"
)

func TestJobScorer_FullMatch(t *testing.T) {
	scorer := NewJobScorer()

	job := JobListing{
		Title:     "Senior Software Engineer",
		Location:  "San Francisco, CA",
		Remote:    false,
		SalaryMin: 140000,
		SalaryMax: 180000,
		Skills:    []string{"Go", "PostgreSQL"},
	}
	prefs := &models.ApplicationPreferences{
		DesiredTitles: []string{"Software Engineer"},
		Skills:        []string{"Go", "PostgreSQL", "Docker"},
		Locations:     []string{"San Francisco"},
		SalaryMin:     130000,
		SalaryMax:     200000,
	}

	score := scorer.Score(job, prefs, nil)

	assert.Equal(t, 100.0, score.Total)
	assert.ElementsMatch(t, []string{"Go", "PostgreSQL"}, score.MatchedSkills)
	assert.Empty(t, score.MissingSkills)
}

func TestJobScorer_PartialSkills(t *testing.T) {
	scorer := NewJobScorer()

	job := JobListing{
		Title:  "Data Engineer",
		Skills: []string{"Python", "Spark", "Airflow", "Kafka"},
	}
	prefs := &models.ApplicationPreferences{
		Skills: []string{"Python", "Spark"},
	}

	score := scorer.Score(job, prefs, nil)

	assert.Equal(t, 20.0, score.SkillScore) // half of the 40-point weight
	assert.Len(t, score.MissingSkills, 2)
}

func TestJobScorer_ResumeSkillsCount(t *testing.T) {
	scorer := NewJobScorer()

	job := JobListing{Skills: []string{"Kubernetes"}}
	score := scorer.Score(job, &models.ApplicationPreferences{}, []string{"kubernetes"})

	// case-insensitive match against skills parsed from the resume
	assert.Equal(t, 40.0, score.SkillScore)
}

func TestJobScorer_RemoteMismatch(t *testing.T) {
	scorer := NewJobScorer()

	job := JobListing{Title: "Engineer", Remote: true}
	prefs := &models.ApplicationPreferences{RemoteOK: false}

	score := scorer.Score(job, prefs, nil)
	assert.Equal(t, 0.0, score.RemoteScore)

	prefs.RemoteOK = true
	score = scorer.Score(job, prefs, nil)
	assert.Equal(t, 10.0, score.RemoteScore)
}

func TestJobScorer_SalaryOutOfRange(t *testing.T) {
	scorer := NewJobScorer()

	job := JobListing{SalaryMin: 50000, SalaryMax: 60000}
	prefs := &models.ApplicationPreferences{SalaryMin: 120000}

	score := scorer.Score(job, prefs, nil)
	assert.Equal(t, 0.0, score.SalaryScore)
}

func TestJobScorer_NilPreferences(t *testing.T) {
	scorer := NewJobScorer()

	score := scorer.Score(JobListing{Skills: []string{"Go"}}, nil, []string{"Go"})
	assert.Equal(t, 40.0, score.SkillScore)
	assert.Equal(t, 0.0, score.TitleScore)
}
