package service

import (
	"sort"

	"github.com/MKhiriev/go-delivery-board/models"
)

// Aggregate summarizes records:
//   - total count and per-status counts, with every status present;
//   - the topN most frequent tasks, count descending, ties in first-seen order;
//   - one row per collaborator with per-status counts and a total, sorted by
//     total descending then collaborator ascending.
//
// Records of the ignored collaborator are skipped. A non-positive topN keeps
// every task.
func Aggregate(records []models.DeliveryRecord, topN int, ignored string) models.ReportSummary {
	summary := models.ReportSummary{
		ByStatus:       newStatusCounts(),
		TopTasks:       []models.TaskCount{},
		ByCollaborator: []models.CollaboratorSummary{},
	}

	taskIndex := make(map[string]int)
	collabIndex := make(map[string]int)

	for _, rec := range records {
		if ignored != "" && rec.Collaborator == ignored {
			continue
		}

		summary.Total++
		summary.ByStatus[rec.Status]++

		if i, ok := taskIndex[rec.Task]; ok {
			summary.TopTasks[i].Total++
		} else {
			taskIndex[rec.Task] = len(summary.TopTasks)
			summary.TopTasks = append(summary.TopTasks, models.TaskCount{Task: rec.Task, Total: 1})
		}

		i, ok := collabIndex[rec.Collaborator]
		if !ok {
			i = len(summary.ByCollaborator)
			collabIndex[rec.Collaborator] = i
			summary.ByCollaborator = append(summary.ByCollaborator, models.CollaboratorSummary{
				Collaborator: rec.Collaborator,
				ByStatus:     newStatusCounts(),
			})
		}
		summary.ByCollaborator[i].ByStatus[rec.Status]++
		summary.ByCollaborator[i].Total++
	}

	// stable sort keeps first-seen order among equal counts
	sort.SliceStable(summary.TopTasks, func(a, b int) bool {
		return summary.TopTasks[a].Total > summary.TopTasks[b].Total
	})
	if topN > 0 && len(summary.TopTasks) > topN {
		summary.TopTasks = summary.TopTasks[:topN]
	}

	sort.SliceStable(summary.ByCollaborator, func(a, b int) bool {
		x, y := summary.ByCollaborator[a], summary.ByCollaborator[b]
		if x.Total != y.Total {
			return x.Total > y.Total
		}
		return x.Collaborator < y.Collaborator
	})

	return summary
}

func newStatusCounts() map[models.Status]int {
	counts := make(map[models.Status]int, len(models.Statuses))
	for _, s := range models.Statuses {
		counts[s] = 0
	}
	return counts
}
