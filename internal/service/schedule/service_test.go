package schedule

import (
	"context"
	"testing"

	"github.com/cineworks/roster-backend-go/internal/domain/roster"
	"github.com/cineworks/roster-backend-go/internal/domain/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveManual_OverwritesExistingCell(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(buwonStaff(2), Config{})

	require.NoError(t, svc.SaveManual(ctx, schedule.ManualAssignRequest{
		Date: "2025-07-01", StaffID: "buwon-1", Kind: "OPEN",
	}))
	require.NoError(t, svc.SaveManual(ctx, schedule.ManualAssignRequest{
		Date: "2025-07-01", StaffID: "buwon-1", Kind: "CLOSE",
	}))

	a, ok := store.Load().Get("2025-07-01", "buwon-1")
	require.True(t, ok)
	assert.Equal(t, schedule.Close, a.Kind)
	assert.True(t, a.Manual)
}

func TestSaveManual_UnknownStaff(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(buwonStaff(2), Config{})

	err := svc.SaveManual(ctx, schedule.ManualAssignRequest{
		Date: "2025-07-01", StaffID: "nobody", Kind: "OPEN",
	})
	assert.ErrorIs(t, err, roster.ErrStaffNotFound)
}

func TestSaveManual_UnknownCustomKind(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(buwonStaff(2), Config{})

	err := svc.SaveManual(ctx, schedule.ManualAssignRequest{
		Date: "2025-07-01", StaffID: "buwon-1", Kind: "CUSTOM_DEADBEEF",
	})
	assert.ErrorIs(t, err, schedule.ErrUnknownShiftKind)
}

func TestSaveManual_CustomKindFromCatalog(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(buwonStaff(2), Config{})

	info, err := svc.AddShiftKind(ctx, schedule.AddShiftKindRequest{Label: "Training"})
	require.NoError(t, err)

	require.NoError(t, svc.SaveManual(ctx, schedule.ManualAssignRequest{
		Date: "2025-07-01", StaffID: "buwon-1", Kind: info.ID,
	}))

	a, ok := store.Load().Get("2025-07-01", "buwon-1")
	require.True(t, ok)
	assert.True(t, a.Kind.IsCustom())
	assert.Equal(t, info.ID, a.Kind.Code())
}

func TestDeleteManual_MissingRecordIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(buwonStaff(2), Config{})

	err := svc.DeleteManual(ctx, schedule.ManualDeleteRequest{
		Date: "2025-07-01", StaffID: "buwon-1",
	})
	assert.NoError(t, err)
}

func TestDeleteManual_RemovesCell(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(buwonStaff(2), Config{})

	require.NoError(t, svc.SaveManual(ctx, schedule.ManualAssignRequest{
		Date: "2025-07-01", StaffID: "buwon-1", Kind: "OPEN",
	}))
	require.NoError(t, svc.DeleteManual(ctx, schedule.ManualDeleteRequest{
		Date: "2025-07-01", StaffID: "buwon-1",
	}))

	_, ok := store.Load().Get("2025-07-01", "buwon-1")
	assert.False(t, ok)
}

func TestMonthTable_FiltersToRequestedMonth(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(buwonStaff(2), Config{})

	require.NoError(t, svc.SaveManual(ctx, schedule.ManualAssignRequest{
		Date: "2025-07-15", StaffID: "buwon-1", Kind: "OPEN",
	}))
	require.NoError(t, svc.SaveManual(ctx, schedule.ManualAssignRequest{
		Date: "2025-08-15", StaffID: "buwon-1", Kind: "OPEN",
	}))

	view := svc.MonthTable(ctx, mustMonth(t))
	_, ok := view.Get("2025-07-15", "buwon-1")
	assert.True(t, ok)
	_, ok = view.Get("2025-08-15", "buwon-1")
	assert.False(t, ok)
}

func TestShiftKinds_BuiltinsPlusCustom(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(buwonStaff(2), Config{})

	builtin := svc.ShiftKinds(ctx)
	assert.Len(t, builtin, 8)

	info, err := svc.AddShiftKind(ctx, schedule.AddShiftKindRequest{Label: "Inventory"})
	require.NoError(t, err)
	assert.Equal(t, "Inventory", info.Label)

	all := svc.ShiftKinds(ctx)
	assert.Len(t, all, 9)
	assert.Equal(t, info.ID, all[8].ID)
}

func TestAddShiftKind_EmptyLabel(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(buwonStaff(2), Config{})

	_, err := svc.AddShiftKind(ctx, schedule.AddShiftKindRequest{Label: "   "})
	assert.Error(t, err)
}
