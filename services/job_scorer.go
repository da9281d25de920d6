package services

import (
	"strings"

	"resumematch/models"
)

// JobListing is an incoming job post to score against a user's preferences.
type JobListing struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Remote      bool     `json:"remote"`
	SalaryMin   int      `json:"salary_min"`
	SalaryMax   int      `json:"salary_max"`
	Skills      []string `json:"skills"`
}

// JobScore is a composite 0-100 match score with its per-factor breakdown.
// Weights: skills 40, title 20, location 15, salary 15, remote 10.
type JobScore struct {
	Total         float64  `json:"total"`
	SkillScore    float64  `json:"skill_score"`
	TitleScore    float64  `json:"title_score"`
	LocationScore float64  `json:"location_score"`
	SalaryScore   float64  `json:"salary_score"`
	RemoteScore   float64  `json:"remote_score"`
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
}

const (
	skillWeight    = 40.0
	titleWeight    = 20.0
	locationWeight = 15.0
	salaryWeight   = 15.0
	remoteWeight   = 10.0
)

// JobScorer ranks job listings against user preferences and parsed resume
// skills. Purely heuristic and deterministic.
type JobScorer struct{}

// NewJobScorer creates a new job scorer.
func NewJobScorer() *JobScorer {
	return &JobScorer{}
}

// Score computes the composite match score. userSkills is the union of the
// preference skills and the skills parsed out of the user's resume.
func (js *JobScorer) Score(job JobListing, prefs *models.ApplicationPreferences, userSkills []string) JobScore {
	score := JobScore{}

	wanted := normalizeSet(job.Skills)
	have := normalizeSet(userSkills)
	if prefs != nil {
		for _, s := range prefs.Skills {
			have[strings.ToLower(strings.TrimSpace(s))] = s
		}
	}

	score.SkillScore, score.MatchedSkills, score.MissingSkills = skillOverlap(wanted, have)
	if prefs != nil {
		score.TitleScore = titleMatch(job.Title, prefs.DesiredTitles)
		score.LocationScore = locationMatch(job, prefs.Locations)
		score.SalaryScore = salaryFit(job, prefs.SalaryMin, prefs.SalaryMax)
		score.RemoteScore = remoteFit(job, prefs.RemoteOK)
	}

	score.Total = score.SkillScore + score.TitleScore + score.LocationScore +
		score.SalaryScore + score.RemoteScore
	if score.Total > 100 {
		score.Total = 100
	}
	return score
}

// skillOverlap awards the full skill weight proportionally to the fraction
// of the job's requested skills the user has. A job that lists no skills
// scores half weight rather than zero, since nothing contradicts a match.
func skillOverlap(wanted, have map[string]string) (float64, []string, []string) {
	if len(wanted) == 0 {
		return skillWeight / 2, nil, nil
	}

	var matched, missing []string
	for key, original := range wanted {
		if _, ok := have[key]; ok {
			matched = append(matched, original)
		} else {
			missing = append(missing, original)
		}
	}
	return skillWeight * float64(len(matched)) / float64(len(wanted)), matched, missing
}

// titleMatch awards full weight when any desired title appears in the job
// title, and partial weight for single overlapping words such as "engineer".
func titleMatch(jobTitle string, desired []string) float64 {
	if len(desired) == 0 {
		return titleWeight / 2
	}
	title := strings.ToLower(jobTitle)
	best := 0.0
	for _, want := range desired {
		want = strings.ToLower(strings.TrimSpace(want))
		if want == "" {
			continue
		}
		if strings.Contains(title, want) {
			return titleWeight
		}
		for _, word := range strings.Fields(want) {
			if len(word) > 3 && strings.Contains(title, word) && best < titleWeight/2 {
				best = titleWeight / 2
			}
		}
	}
	return best
}

func locationMatch(job JobListing, locations []string) float64 {
	if len(locations) == 0 || job.Remote {
		return locationWeight
	}
	jobLoc := strings.ToLower(job.Location)
	for _, loc := range locations {
		loc = strings.ToLower(strings.TrimSpace(loc))
		if loc != "" && strings.Contains(jobLoc, loc) {
			return locationWeight
		}
	}
	return 0
}

// salaryFit awards full weight when the advertised range overlaps the
// desired one, half weight when the job does not advertise a salary.
func salaryFit(job JobListing, wantMin, wantMax int) float64 {
	if job.SalaryMin == 0 && job.SalaryMax == 0 {
		return salaryWeight / 2
	}
	if wantMin == 0 && wantMax == 0 {
		return salaryWeight
	}
	jobMax := job.SalaryMax
	if jobMax == 0 {
		jobMax = job.SalaryMin
	}
	if wantMax == 0 {
		wantMax = int(^uint(0) >> 1)
	}
	if jobMax >= wantMin && job.SalaryMin <= wantMax {
		return salaryWeight
	}
	return 0
}

func remoteFit(job JobListing, remoteOK bool) float64 {
	if !job.Remote || remoteOK {
		return remoteWeight
	}
	return 0
}

func normalizeSet(values []string) map[string]string {
	set := make(map[string]string, len(values))
	for _, v := range values {
		key := strings.ToLower(strings.TrimSpace(v))
		if key != "" {
			set[key] = strings.TrimSpace(v)
		}
	}
	return set
}
