package services

import "recruitai/hr-dashboard/internal/models"

const (
	ExcellentMatchThreshold = 8.0
	GoodMatchThreshold      = 6.0
	MaxScore                = 10.0
)

func ScoreLabel(score float64) string {
	switch {
	case score >= ExcellentMatchThreshold:
		return "Excellent Match"
	case score >= GoodMatchThreshold:
		return "Good Match"
	default:
		return "Fair Match"
	}
}

// ScoreColor returns the gradient classes used by the score badge and bar.
func ScoreColor(score float64) string {
	switch {
	case score >= ExcellentMatchThreshold:
		return "from-green-500 to-green-600"
	case score >= GoodMatchThreshold:
		return "from-yellow-500 to-yellow-600"
	default:
		return "from-red-500 to-red-600"
	}
}

func ScoreProgress(score float64) float64 {
	return (score / MaxScore) * 100
}

// ScoreBarWidth is ScoreProgress clamped for rendering.
func ScoreBarWidth(score float64) float64 {
	p := ScoreProgress(score)
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

func JobStatsFor(jobs []models.Job) models.JobStats {
	return models.JobStats{TotalJobs: len(jobs)}
}

func CandidateStatsFor(resumes []models.Resume) models.CandidateStats {
	stats := models.CandidateStats{Total: len(resumes)}
	if len(resumes) == 0 {
		return stats
	}

	var sum float64
	for _, r := range resumes {
		sum += r.Score.FinalScore
		if r.Score.FinalScore >= ExcellentMatchThreshold {
			stats.TopCandidates++
		}
	}
	stats.AverageScore = sum / float64(len(resumes))
	return stats
}

func CandidateViews(resumes []models.Resume) []models.CandidateView {
	views := make([]models.CandidateView, 0, len(resumes))
	for _, r := range resumes {
		views = append(views, models.CandidateView{
			Resume:   r,
			Label:    ScoreLabel(r.Score.FinalScore),
			Progress: ScoreProgress(r.Score.FinalScore),
		})
	}
	return views
}
