package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/groupbuy/core/pkg/domain/model"
)

func TestCreateProcurementRequest_Defaults(t *testing.T) {
	t.Run("fills defaults for omitted fields", func(t *testing.T) {
		req := &model.CreateProcurementRequest{
			Title:       "Bulk honey",
			OrganizerID: 3,
		}

		p := req.Procurement()
		gt.Equal(t, p.Unit, "units")
		gt.Equal(t, p.Status, model.ProcurementDraft)
		gt.Equal(t, p.DeliveryAddress, "")
		gt.Equal(t, p.ImageURL, "")
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		unit := "kg"
		status := model.ProcurementActive
		addr := "Main St 5"

		req := &model.CreateProcurementRequest{
			Title:           "Bulk honey",
			OrganizerID:     3,
			Unit:            &unit,
			Status:          &status,
			DeliveryAddress: &addr,
		}

		p := req.Procurement()
		gt.Equal(t, p.Unit, "kg")
		gt.Equal(t, p.Status, model.ProcurementActive)
		gt.Equal(t, p.DeliveryAddress, "Main St 5")
	})
}
