package receivables

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/mocks"

	"github.com/franchise-ops/collections/receivables/workflow"
)

func TestScheduleEscalationSweep(t *testing.T) {
	testCases := []struct {
		name          string
		temporalError error
		expectedError string
	}{
		{
			name: "scheduled",
		},
		{
			name:          "already_running_is_benign",
			temporalError: serviceerror.NewWorkflowExecutionAlreadyStarted("already started", "", ""),
		},
		{
			name:          "temporal_unavailable",
			temporalError: errors.New("connection refused"),
			expectedError: "execute workflow escalation-sweep",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockTemporal := mocks.NewClient(t)
			service := &Service{temporal: mockTemporal}

			mockTemporal.On("ExecuteWorkflow",
				mock.Anything,
				mock.MatchedBy(func(options client.StartWorkflowOptions) bool {
					return options.ID == workflow.EscalationSweepWorkflowID &&
						options.TaskQueue == taskQueue &&
						options.CronSchedule != ""
				}),
				mock.Anything,
			).Return(nil, tc.temporalError)

			err := service.scheduleEscalationSweep(context.Background())

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEscalationConfig(t *testing.T) {
	c := escalationConfig(&Config{
		GracePeriodDays: 7,
		SchedulingLink:  "https://agenda.example.com",
		SenderAddress:   "juridico@example.com",
		SenderName:      "Jurídico",
	})

	assert.Equal(t, float64(7*24), c.GracePeriod.Hours())
	assert.Equal(t, "https://agenda.example.com", c.SchedulingLink)
	assert.Equal(t, "juridico@example.com", c.SenderAddress)
	assert.Equal(t, "Jurídico", c.SenderName)
}
