package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/LaryssaGabi/StudyFlow/internal/models"
	mock_repository "github.com/LaryssaGabi/StudyFlow/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTasksMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_repository.MockQueryI)) *TasksR {
	db := mock_repository.NewMockQueryI(ctrl)
	if setupMock != nil {
		setupMock(db)
	}

	return &TasksR{db: db, newID: func() string { return "task-1" }}
}

func TestTasksR_ListTasks(t *testing.T) {
	t.Parallel()

	monday := 1
	expected := []models.StudyTask{
		{ID: "b", Title: "Essay", DayOfWeek: 1, Subject: "History", Priority: models.PriorityHigh},
		{ID: "a", Title: "Algebra", DayOfWeek: 1, Subject: "Math", Priority: models.PriorityLow},
	}

	type args struct {
		ctx    context.Context
		filter models.TaskFilter
	}
	tests := []struct {
		name    string
		args    args
		f       func(*mock_repository.MockQueryI)
		want    []models.StudyTask
		wantErr bool
	}{
		{
			name: "all days",
			args: args{ctx: context.Background()},
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.AssignableToTypeOf(&expected), gomock.Any()).
					DoAndReturn(func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
						assert.NotContains(t, query, "WHERE")
						assert.Contains(t, query, "ORDER BY created_at DESC")
						*dest.(*[]models.StudyTask) = expected
						return nil
					})
			},
			want: expected,
		},
		{
			name: "filtered by day",
			args: args{ctx: context.Background(), filter: models.TaskFilter{DayOfWeek: &monday}},
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), 1).
					DoAndReturn(func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
						assert.Contains(t, query, "WHERE day_of_week = $1")
						*dest.(*[]models.StudyTask) = expected
						return nil
					})
			},
			want: expected,
		},
		{
			name: "db error",
			args: args{ctx: context.Background()},
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newTasksMock(t, ctrl, tt.f)

			got, err := repo.ListTasks(tt.args.ctx, tt.args.filter)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTasksR_InsertTask(t *testing.T) {
	t.Parallel()

	now := time.Now()
	minutes := 45
	input := models.NewStudyTask{
		Title:           "Algebra",
		DayOfWeek:       2,
		Priority:        models.PriorityMedium,
		DurationMinutes: &minutes,
		Subject:         "Math",
	}
	created := models.StudyTask{
		ID:              "task-1",
		Title:           "Algebra",
		DayOfWeek:       2,
		Priority:        models.PriorityMedium,
		DurationMinutes: &minutes,
		Subject:         "Math",
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		want    models.StudyTask
		wantErr error
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.AssignableToTypeOf(&created), gomock.Any(),
					"task-1", "Algebra", (*string)(nil), 2, models.PriorityMedium, false, &minutes, "Math").
					DoAndReturn(func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
						assert.Contains(t, query, "RETURNING")
						*dest.(*models.StudyTask) = created
						return nil
					})
			},
			want: created,
		},
		{
			name: "check violation",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: "23514", Message: "day_of_week check"})
			},
			wantErr: models.ErrInvalidInput,
		},
		{
			name: "db error",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newTasksMock(t, ctrl, tt.f)

			got, err := repo.InsertTask(context.Background(), input)
			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, models.ErrInvalidInput) {
					assert.ErrorIs(t, err, models.ErrInvalidInput)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTasksR_PatchTask(t *testing.T) {
	t.Parallel()

	updated := models.StudyTask{ID: "task-1", Title: "Algebra", Completed: true}

	tests := []struct {
		name    string
		patch   models.TaskPatch
		f       func(*mock_repository.MockQueryI)
		wantErr error
	}{
		{
			name:  "completion",
			patch: models.TaskCompletion{Completed: true},
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), true, "task-1").
					DoAndReturn(func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
						assert.Contains(t, query, "SET completed = $1, updated_at = NOW() WHERE id = $2")
						*dest.(*models.StudyTask) = updated
						return nil
					})
			},
		},
		{
			name: "edit sorts columns",
			patch: models.TaskEdit{
				Title:   strPtr("Algebra"),
				Subject: strPtr("Math"),
			},
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), "Math", "Algebra", "task-1").
					DoAndReturn(func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
						assert.Contains(t, query, "SET subject = $1, title = $2, updated_at = NOW() WHERE id = $3")
						*dest.(*models.StudyTask) = updated
						return nil
					})
			},
		},
		{
			name:  "not found",
			patch: models.TaskCompletion{Completed: true},
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(sql.ErrNoRows)
			},
			wantErr: models.ErrNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newTasksMock(t, ctrl, tt.f)

			got, err := repo.PatchTask(context.Background(), "task-1", tt.patch)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, updated, got)
		})
	}
}

func TestTasksR_RemoveTask(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		wantErr bool
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), "task-1").Return(nil, nil)
			},
		},
		{
			name: "error exec",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), "task-1").Return(nil, errors.New("error exec"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newTasksMock(t, ctrl, tt.f)

			err := repo.RemoveTask(context.Background(), "task-1")
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
		})
	}
}

func strPtr(s string) *string {
	return &s
}
