package service_test

import (
	"context"
	"errors"
	"roomops/infras/otel/mocks"
	inspectionMocks "roomops/internal/domains/inspection/mocks"
	"roomops/internal/domains/inspection/model"
	"roomops/internal/domains/inspection/model/dto"
	"roomops/internal/domains/inspection/service"
	inventoryMocks "roomops/internal/domains/inventory/mocks"
	roomMocks "roomops/internal/domains/room/mocks"
	roomModel "roomops/internal/domains/room/model"
	"roomops/shared/failure"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestEngine_Evaluate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := inspectionMocks.NewMockInspection(ctrl)
	mockInventory := inventoryMocks.NewMockInventory(ctrl)
	mockRoom := roomMocks.NewMockRoom(ctrl)

	svc := service.New(mockRepo, mockInventory, mockRoom, mocks.NewOtel())

	checklist := []dto.ChecklistLine{
		{InventoryID: "towel", ActualQty: 0, Status: model.LineStatusMissing},
		{InventoryID: "kettle", ActualQty: 1, Status: model.LineStatusDamaged},
	}

	tests := []struct {
		name      string
		setupMock func()
		total     string
		wantKind  string
	}{
		{
			name: "priced against the room category",
			setupMock: func() {
				mockRoom.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomModel.Room{ID: "room-101", CategoryID: "deluxe"}, nil)
				mockInventory.EXPECT().ForCategory(gomock.Any(), "deluxe").Return(referenceList(), nil)
			},
			total: "300",
		},
		{
			name: "room missing",
			setupMock: func() {
				mockRoom.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomModel.Room{}, nil)
			},
			wantKind: failure.KindNotFound,
		},
		{
			name: "reference list unavailable",
			setupMock: func() {
				mockRoom.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomModel.Room{ID: "room-101", CategoryID: "deluxe"}, nil)
				mockInventory.EXPECT().ForCategory(gomock.Any(), "deluxe").Return(nil, errors.New("i/o timeout"))
			},
			wantKind: failure.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			assessment, err := svc.Evaluate(context.Background(), "room-101", checklist)

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			assert.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.total).Equal(assessment.TotalCharges))
		})
	}
}

func TestEngine_GetByTask(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := inspectionMocks.NewMockInspection(ctrl)
	svc := service.New(mockRepo, inventoryMocks.NewMockInventory(ctrl), roomMocks.NewMockRoom(ctrl), mocks.NewOtel())

	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Inspection{
		ID:           "insp-1",
		TaskID:       "task-1",
		TotalCharges: decimal.RequireFromString("100"),
		Lines:        []model.Line{{InventoryID: "towel", Charge: decimal.RequireFromString("100"), Billable: true}},
	}, nil)

	res, err := svc.GetByTask(context.Background(), "task-1")

	assert.NoError(t, err)
	assert.Equal(t, "insp-1", res.ID)
	assert.Len(t, res.Breakdown, 1)

	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Inspection{}, nil)

	_, err = svc.GetByTask(context.Background(), "task-2")
	assert.True(t, failure.Is(err, failure.KindNotFound))
}
