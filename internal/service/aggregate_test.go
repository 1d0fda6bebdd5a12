package service

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-delivery-board/models"
)

func rec(collaborator, task string, status models.Status) models.DeliveryRecord {
	return models.DeliveryRecord{Collaborator: collaborator, Task: task, Status: status, Department: models.Fiscal}
}

func TestAggregate_Golden(t *testing.T) {
	records := []models.DeliveryRecord{
		rec("Ana", "DCTF", models.Late),
		rec("Bruno", "Folha", models.OnTime),
		rec("Ana", "Folha", models.OnTime),
		rec("Caio", "SPED", models.Justified),
		rec("Ana", "DCTF", models.OnTime),
		rec("TI", "DCTF", models.Late),
		rec("Bruno", "SPED", models.Late),
		rec("Caio", "GFIP", models.OnTime),
	}

	summary := Aggregate(records, 3, "TI")

	out, err := json.MarshalIndent(summary, "", "  ")
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "report_summary", append(out, '\n'))
}

func TestAggregate_EmptyInput(t *testing.T) {
	summary := Aggregate(nil, 10, "")

	assert.Zero(t, summary.Total)
	assert.Equal(t, map[models.Status]int{models.OnTime: 0, models.Late: 0, models.Justified: 0}, summary.ByStatus)
	assert.NotNil(t, summary.TopTasks)
	assert.Empty(t, summary.TopTasks)
	assert.NotNil(t, summary.ByCollaborator)
	assert.Empty(t, summary.ByCollaborator)
}

func TestAggregate_TiesKeepFirstSeenOrder(t *testing.T) {
	records := []models.DeliveryRecord{
		rec("A", "zeta", models.OnTime),
		rec("A", "alpha", models.OnTime),
		rec("A", "mid", models.OnTime),
		rec("A", "mid", models.OnTime),
	}

	summary := Aggregate(records, 0, "")

	require.Len(t, summary.TopTasks, 3)
	assert.Equal(t, []models.TaskCount{{Task: "mid", Total: 2}, {Task: "zeta", Total: 1}, {Task: "alpha", Total: 1}}, summary.TopTasks)
}

func TestAggregate_CollaboratorTieBreaksByName(t *testing.T) {
	records := []models.DeliveryRecord{
		rec("Zeca", "T", models.OnTime),
		rec("Ana", "T", models.Late),
	}

	summary := Aggregate(records, 10, "")

	require.Len(t, summary.ByCollaborator, 2)
	assert.Equal(t, "Ana", summary.ByCollaborator[0].Collaborator)
	assert.Equal(t, 1, summary.ByCollaborator[0].ByStatus[models.Late])
	assert.Equal(t, 0, summary.ByCollaborator[0].ByStatus[models.Justified])
}
