package schedule

import (
	"context"
	"fmt"
	"testing"

	"github.com/cineworks/roster-backend-go/internal/domain/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClearAutomatic_KeepsManualPins(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(buwonStaff(4), Config{})

	require.NoError(t, svc.SaveManual(ctx, schedule.ManualAssignRequest{
		Date: "2025-07-10", StaffID: "buwon-1", Kind: "OPEN",
	}))
	require.NoError(t, svc.Generate(ctx, schedule.GenerateRequest{Month: testMonth, Cinema: "BUWON"}))

	require.NoError(t, svc.ClearAutomatic(ctx, schedule.ClearMonthRequest{Month: testMonth}))

	table := store.Load()
	for _, key := range monthKeys() {
		for _, st := range buwonStaff(4) {
			a, ok := table.Get(key, st.ID)
			if key == "2025-07-10" && st.ID == "buwon-1" {
				require.True(t, ok)
				assert.True(t, a.Manual)
				assert.Equal(t, schedule.Open, a.Kind)
				continue
			}
			assert.False(t, ok, "day %s staff %s should be cleared", key, st.ID)
		}
	}
}

func TestClearManual_KeepsAutomaticAssignments(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(buwonStaff(4), Config{})

	require.NoError(t, svc.SaveManual(ctx, schedule.ManualAssignRequest{
		Date: "2025-07-10", StaffID: "buwon-1", Kind: "OPEN",
	}))
	require.NoError(t, svc.Generate(ctx, schedule.GenerateRequest{Month: testMonth, Cinema: "BUWON"}))

	require.NoError(t, svc.ClearManual(ctx, schedule.ClearMonthRequest{Month: testMonth}))

	table := store.Load()
	_, ok := table.Get("2025-07-10", "buwon-1")
	assert.False(t, ok)

	// Everything the engine wrote is still there.
	for _, st := range buwonStaff(4)[1:] {
		a, ok := table.Get("2025-07-10", st.ID)
		require.True(t, ok)
		assert.False(t, a.Manual)
	}
}

func TestClear_Idempotent(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(buwonStaff(4), Config{})

	require.NoError(t, svc.Generate(ctx, schedule.GenerateRequest{Month: testMonth, Cinema: "BUWON"}))
	require.NoError(t, svc.ClearAutomatic(ctx, schedule.ClearMonthRequest{Month: testMonth}))
	once := store.Load()

	require.NoError(t, svc.ClearAutomatic(ctx, schedule.ClearMonthRequest{Month: testMonth}))
	assert.Equal(t, once, store.Load())
}

func TestClearWeek_OnlyTargetCinemaAndWeek(t *testing.T) {
	ctx := context.Background()
	members := append(buwonStaff(4), outletStaff(3)...)
	svc, store := newTestService(members, Config{})

	require.NoError(t, svc.Generate(ctx, schedule.GenerateRequest{Month: testMonth, Cinema: "BUWON"}))
	require.NoError(t, svc.Generate(ctx, schedule.GenerateRequest{Month: testMonth, Cinema: "OUTLET"}))

	require.NoError(t, svc.ClearWeekAutomatic(ctx, schedule.ClearWeekRequest{
		Month: testMonth, Cinema: "BUWON", Week: 0,
	}))

	table := store.Load()
	for d := 1; d <= 7; d++ {
		key := fmt.Sprintf("2025-07-%02d", d)
		for _, st := range buwonStaff(4) {
			_, ok := table.Get(key, st.ID)
			assert.False(t, ok, "day %s staff %s", key, st.ID)
		}
		// The other cinema's same week is untouched.
		for _, st := range outletStaff(3) {
			_, ok := table.Get(key, st.ID)
			assert.True(t, ok, "day %s staff %s", key, st.ID)
		}
	}

	// The target cinema's other weeks are untouched.
	for d := 8; d <= 14; d++ {
		key := fmt.Sprintf("2025-07-%02d", d)
		for _, st := range buwonStaff(4) {
			_, ok := table.Get(key, st.ID)
			assert.True(t, ok, "day %s staff %s", key, st.ID)
		}
	}
}

func TestClearWeekManual_KeepsAutomatic(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(buwonStaff(4), Config{})

	require.NoError(t, svc.SaveManual(ctx, schedule.ManualAssignRequest{
		Date: "2025-07-02", StaffID: "buwon-1", Kind: "CLOSE",
	}))
	require.NoError(t, svc.Generate(ctx, schedule.GenerateRequest{Month: testMonth, Cinema: "BUWON"}))

	require.NoError(t, svc.ClearWeekManual(ctx, schedule.ClearWeekRequest{
		Month: testMonth, Cinema: "BUWON", Week: 0,
	}))

	table := store.Load()
	_, ok := table.Get("2025-07-02", "buwon-1")
	assert.False(t, ok)

	a, ok := table.Get("2025-07-02", "buwon-2")
	require.True(t, ok)
	assert.False(t, a.Manual)
}
