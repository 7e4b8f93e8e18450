package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryTemperatures(t *testing.T) {
	r := NewRegistry()
	tests := []struct {
		id   string
		want float64
	}{
		{RoleLearningPathCurator, 0.3},
		{RoleStudyPlanGenerator, 0.4},
		{RoleEngagementAgent, 0.6},
		{RoleAssessmentAgent, 0.2},
		{RoleAssessmentEvaluator, 0.3},
		{RoleExamPlanAgent, 0.3},
	}
	for _, tt := range tests {
		temp, err := r.Temperature(tt.id)
		require.NoError(t, err, tt.id)
		assert.Equal(t, tt.want, temp, tt.id)
	}
}

func TestRegistryUnknownRole(t *testing.T) {
	r := NewRegistry()
	_, err := r.Role("career_coach")
	require.Error(t, err)
	var unknownErr *UnknownRoleError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "career_coach", unknownErr.ID)
}

func TestRegistryOrder(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, []string{
		RoleLearningPathCurator,
		RoleStudyPlanGenerator,
		RoleEngagementAgent,
		RoleAssessmentAgent,
		RoleAssessmentEvaluator,
		RoleExamPlanAgent,
	}, r.IDs())
}

func TestRegistryRolesAreComplete(t *testing.T) {
	r := NewRegistry()
	for _, id := range r.IDs() {
		rc, err := r.Role(id)
		require.NoError(t, err)
		assert.NotEmpty(t, rc.Name, id)
		assert.NotEmpty(t, rc.Instructions, id)
		assert.NotNil(t, rc.Schema, id)
		assert.Positive(t, rc.MaxTokens, id)
	}
}
