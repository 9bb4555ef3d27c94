package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"school-schedule/api"
	"school-schedule/internal/auth"
	"school-schedule/internal/compat"
	"school-schedule/internal/lock"
	"school-schedule/internal/models"
	"school-schedule/internal/storage/sqlite"
	"school-schedule/internal/storage/sqlstore"
	"school-schedule/pkg/response"
)

const ownerID = "owner-1"

type fixture struct {
	svc      *Service
	store    *sqlstore.Store
	schoolID string
	courseID string
	ctx      context.Context
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "service.db"))
	if err != nil {
		t.Fatalf("sqlite.New failed: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})

	ctx := context.Background()

	schoolID, err := store.CreateSchool(ctx, &models.School{Name: "Liceo 7", OwnerID: ownerID})
	if err != nil {
		t.Fatalf("CreateSchool failed: %v", err)
	}

	courseID, err := store.CreateCourse(ctx, &models.Course{SchoolID: schoolID, Name: "3B", AcademicLevel: models.LevelBasic})
	if err != nil {
		t.Fatalf("CreateCourse failed: %v", err)
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &fixture{
		svc:      NewService(store, lock.Nop{}, log),
		store:    store,
		schoolID: schoolID,
		courseID: courseID,
		ctx:      auth.WithPrincipal(ctx, auth.Principal{UserID: ownerID}),
	}
}

func (f *fixture) createSchedule(t *testing.T, name string) *api.ScheduleResponse {
	t.Helper()

	schedule, err := f.svc.CreateSchedule(f.ctx, &api.ScheduleRequest{CourseID: f.courseID, Name: name})
	if err != nil {
		t.Fatalf("CreateSchedule failed: %v", err)
	}

	return schedule
}

func basicRequest(start string, blockDuration int) *api.LevelConfigRequest {
	return &api.LevelConfigRequest{
		StartTime:     start,
		EndTime:       "17:00",
		BlockDuration: blockDuration,
		Breaks: []api.Break{
			{AfterBlock: 2, Duration: 15, Name: "Recreo"},
			{AfterBlock: 4, Duration: 45, Name: "Almuerzo"},
		},
	}
}

func TestGetLevelConfig_DefaultWhenNotStored(t *testing.T) {
	f := newFixture(t)

	cfg, err := f.svc.GetLevelConfig(f.ctx, f.schoolID, "basic")
	if err != nil {
		t.Fatalf("GetLevelConfig failed: %v", err)
	}

	if !cfg.IsDefault {
		t.Error("expected default configuration")
	}
	if cfg.StartTime != "08:00" || cfg.EndTime != "17:00" || cfg.BlockDuration != 45 {
		t.Errorf("unexpected default: %+v", cfg)
	}
	if len(cfg.Breaks) != 3 {
		t.Errorf("default breaks = %d, want 3", len(cfg.Breaks))
	}
}

func TestListLevelConfigs_MixesStoredAndDefaults(t *testing.T) {
	f := newFixture(t)

	if _, err := f.svc.SaveLevelConfig(f.ctx, f.schoolID, "MIDDLE", &api.LevelConfigRequest{
		StartTime:     "07:30",
		EndTime:       "16:30",
		BlockDuration: 90,
	}); err != nil {
		t.Fatalf("SaveLevelConfig failed: %v", err)
	}

	configs, err := f.svc.ListLevelConfigs(f.ctx, f.schoolID)
	if err != nil {
		t.Fatalf("ListLevelConfigs failed: %v", err)
	}

	if len(configs) != 2 {
		t.Fatalf("got %d configs, want 2", len(configs))
	}
	if configs[0].AcademicLevel != "BASIC" || !configs[0].IsDefault {
		t.Errorf("BASIC = %+v, want default", configs[0])
	}
	if configs[1].AcademicLevel != "MIDDLE" || configs[1].IsDefault || configs[1].StartTime != "07:30" {
		t.Errorf("MIDDLE = %+v, want stored", configs[1])
	}
}

func TestSaveLevelConfig_Validation(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name  string
		level string
		req   *api.LevelConfigRequest
	}{
		{
			name:  "block duration not multiple of 15",
			level: "BASIC",
			req:   &api.LevelConfigRequest{StartTime: "08:00", EndTime: "17:00", BlockDuration: 40},
		},
		{
			name:  "break duration not multiple of 15",
			level: "BASIC",
			req: &api.LevelConfigRequest{
				StartTime: "08:00", EndTime: "17:00", BlockDuration: 45,
				Breaks: []api.Break{{AfterBlock: 1, Duration: 10, Name: "x"}},
			},
		},
		{
			name:  "unknown level",
			level: "HIGH",
			req:   basicRequest("08:00", 45),
		},
		{
			name:  "body level mismatch",
			level: "BASIC",
			req: &api.LevelConfigRequest{
				AcademicLevel: "MIDDLE", StartTime: "08:00", EndTime: "17:00", BlockDuration: 45,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.SaveLevelConfig(f.ctx, f.schoolID, tt.level, tt.req)
			if !errors.Is(err, response.ErrValidation) {
				t.Errorf("error = %v, want ErrValidation", err)
			}
		})
	}

	if _, err := f.store.GetLevelConfig(context.Background(), f.schoolID, models.LevelBasic); !errors.Is(err, response.ErrNotFound) {
		t.Errorf("invalid save must not persist, got %v", err)
	}
}

func TestSaveLevelConfig_CriticalChangeDeprecatesSchedules(t *testing.T) {
	f := newFixture(t)

	first := f.createSchedule(t, "Horario 3B")
	second := f.createSchedule(t, "Horario 3B bis")

	resp, err := f.svc.SaveLevelConfig(f.ctx, f.schoolID, "BASIC", basicRequest("08:30", 45))
	if err != nil {
		t.Fatalf("SaveLevelConfig failed: %v", err)
	}
	if !resp.CriticalChange {
		t.Error("start time change should be critical")
	}

	for _, id := range []string{first.ID, second.ID} {
		schedule, err := f.svc.GetSchedule(f.ctx, id)
		if err != nil {
			t.Fatalf("GetSchedule failed: %v", err)
		}
		if !schedule.IsDeprecated {
			t.Errorf("schedule %s should be deprecated", id)
		}
	}

	check, err := f.svc.CheckCompatibility(f.ctx, first.ID)
	if err != nil {
		t.Fatalf("CheckCompatibility failed: %v", err)
	}
	if check.IsCompatible || check.Recommendation != string(compat.RecommendMigrate) || !check.CanAutoMigrate {
		t.Errorf("unexpected compatibility: %+v", check)
	}
	if len(check.Issues) != 1 {
		t.Errorf("issues = %v, want 1", check.Issues)
	}
}

func TestSaveLevelConfig_BreaksOnlyChangeKeepsSchedules(t *testing.T) {
	f := newFixture(t)

	schedule := f.createSchedule(t, "Horario 3B")

	req := basicRequest("08:00", 45)
	req.Breaks = []api.Break{{AfterBlock: 3, Duration: 30, Name: "Recreo largo"}}

	resp, err := f.svc.SaveLevelConfig(f.ctx, f.schoolID, "BASIC", req)
	if err != nil {
		t.Fatalf("SaveLevelConfig failed: %v", err)
	}
	if resp.CriticalChange {
		t.Error("breaks-only change should not be critical")
	}
	if resp.Config.IsDefault || resp.Config.ID == "" {
		t.Errorf("saved config = %+v, want stored", resp.Config)
	}

	got, err := f.svc.GetSchedule(f.ctx, schedule.ID)
	if err != nil {
		t.Fatalf("GetSchedule failed: %v", err)
	}
	if got.IsDeprecated {
		t.Error("schedule should stay current after a breaks-only change")
	}
}

func TestSaveLevelConfig_OtherLevelUntouched(t *testing.T) {
	f := newFixture(t)

	schedule := f.createSchedule(t, "Horario 3B")

	if _, err := f.svc.SaveLevelConfig(f.ctx, f.schoolID, "MIDDLE", &api.LevelConfigRequest{
		StartTime: "09:00", EndTime: "18:00", BlockDuration: 90,
	}); err != nil {
		t.Fatalf("SaveLevelConfig failed: %v", err)
	}

	got, err := f.svc.GetSchedule(f.ctx, schedule.ID)
	if err != nil {
		t.Fatalf("GetSchedule failed: %v", err)
	}
	if got.IsDeprecated {
		t.Error("BASIC schedule deprecated by a MIDDLE change")
	}
}

type busyLocker struct{}

func (busyLocker) Lock(context.Context, string, time.Duration) (bool, error) { return false, nil }
func (busyLocker) Unlock(context.Context, string) error                     { return nil }
func (busyLocker) Close() error                                             { return nil }

func TestSaveLevelConfig_Locked(t *testing.T) {
	f := newFixture(t)
	svc := NewService(f.store, busyLocker{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := svc.SaveLevelConfig(f.ctx, f.schoolID, "BASIC", basicRequest("08:30", 45))
	if !errors.Is(err, response.ErrLocked) {
		t.Errorf("error = %v, want ErrLocked", err)
	}
}

func TestSaveLevelConfig_HookFailureRollsBack(t *testing.T) {
	f := newFixture(t)

	schedule := f.createSchedule(t, "Horario 3B")

	var got ConfigSaved
	f.svc.OnConfigSaved(func(_ context.Context, event ConfigSaved) error {
		got = event
		return errors.New("downstream unavailable")
	})

	if _, err := f.svc.SaveLevelConfig(f.ctx, f.schoolID, "BASIC", basicRequest("08:30", 45)); err == nil {
		t.Fatal("SaveLevelConfig succeeded, want hook error")
	}

	if !got.Previous.IsDefault || got.Previous.StartTime != "08:00" {
		t.Errorf("Previous = %+v, want defaults", got.Previous)
	}
	if got.Current.StartTime != "08:30" || got.Tx == nil {
		t.Errorf("Current = %+v, tx = %v", got.Current, got.Tx)
	}

	if _, err := f.store.GetLevelConfig(context.Background(), f.schoolID, models.LevelBasic); !errors.Is(err, response.ErrNotFound) {
		t.Errorf("rolled back config is stored: %v", err)
	}

	current, err := f.svc.GetSchedule(f.ctx, schedule.ID)
	if err != nil {
		t.Fatalf("GetSchedule failed: %v", err)
	}
	if current.IsDeprecated {
		t.Error("deprecation written before the failed hook was not rolled back")
	}
}

type recordingLocker struct {
	unlockCtx context.Context
	unlockErr error
}

func (l *recordingLocker) Lock(context.Context, string, time.Duration) (bool, error) { return true, nil }
func (l *recordingLocker) Close() error                                             { return nil }

func (l *recordingLocker) Unlock(ctx context.Context, _ string) error {
	l.unlockCtx = ctx
	return l.unlockErr
}

func TestSaveLevelConfig_ReleasesLockAfterCancel(t *testing.T) {
	f := newFixture(t)

	locker := &recordingLocker{}
	svc := NewService(f.store, locker, slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx, cancel := context.WithCancel(f.ctx)
	defer cancel()

	svc.OnConfigSaved(func(context.Context, ConfigSaved) error {
		cancel()
		return nil
	})

	if _, err := svc.SaveLevelConfig(ctx, f.schoolID, "BASIC", basicRequest("08:30", 45)); err == nil {
		t.Error("SaveLevelConfig committed on a cancelled context")
	}

	if locker.unlockCtx == nil {
		t.Fatal("lock was not released")
	}
	if err := locker.unlockCtx.Err(); err != nil {
		t.Errorf("unlock context error = %v, want live context", err)
	}
}

func TestSaveLevelConfig_UnlockFailureKeepsResult(t *testing.T) {
	f := newFixture(t)

	locker := &recordingLocker{unlockErr: errors.New("redis gone")}
	svc := NewService(f.store, locker, slog.New(slog.NewTextHandler(io.Discard, nil)))

	if _, err := svc.SaveLevelConfig(f.ctx, f.schoolID, "BASIC", basicRequest("08:30", 45)); err != nil {
		t.Fatalf("SaveLevelConfig failed: %v", err)
	}
	if locker.unlockCtx == nil {
		t.Error("lock was not released")
	}
}

func TestUpdateScheduleSnapshot_ThenCompatible(t *testing.T) {
	f := newFixture(t)

	schedule := f.createSchedule(t, "Horario 3B")

	if _, err := f.svc.SaveLevelConfig(f.ctx, f.schoolID, "BASIC", basicRequest("08:00", 90)); err != nil {
		t.Fatalf("SaveLevelConfig failed: %v", err)
	}

	check, err := f.svc.CheckCompatibility(f.ctx, schedule.ID)
	if err != nil {
		t.Fatalf("CheckCompatibility failed: %v", err)
	}
	if check.Recommendation != string(compat.RecommendRecreate) || check.CanAutoMigrate {
		t.Errorf("block duration change: %+v, want recreate", check)
	}

	synced, err := f.svc.UpdateScheduleSnapshot(f.ctx, schedule.ID)
	if err != nil {
		t.Fatalf("UpdateScheduleSnapshot failed: %v", err)
	}
	if synced.IsDeprecated {
		t.Error("sync should clear the deprecated flag")
	}
	if synced.ConfigSnapshot == nil || synced.ConfigSnapshot.BlockDuration != 90 {
		t.Errorf("snapshot = %+v, want block duration 90", synced.ConfigSnapshot)
	}

	check, err = f.svc.CheckCompatibility(f.ctx, schedule.ID)
	if err != nil {
		t.Fatalf("CheckCompatibility failed: %v", err)
	}
	if !check.IsCompatible || check.Recommendation != string(compat.RecommendKeep) {
		t.Errorf("after sync: %+v, want compatible", check)
	}
}

func TestRestoreSchedule_KeepsSnapshot(t *testing.T) {
	f := newFixture(t)

	schedule := f.createSchedule(t, "Horario 3B")

	if _, err := f.svc.SaveLevelConfig(f.ctx, f.schoolID, "BASIC", basicRequest("08:30", 45)); err != nil {
		t.Fatalf("SaveLevelConfig failed: %v", err)
	}

	restored, err := f.svc.RestoreSchedule(f.ctx, schedule.ID)
	if err != nil {
		t.Fatalf("RestoreSchedule failed: %v", err)
	}
	if restored.IsDeprecated {
		t.Error("restore should clear the deprecated flag")
	}
	if restored.ConfigSnapshot == nil || restored.ConfigSnapshot.StartTime != "08:00" {
		t.Errorf("snapshot = %+v, want original 08:00", restored.ConfigSnapshot)
	}

	check, err := f.svc.CheckCompatibility(f.ctx, schedule.ID)
	if err != nil {
		t.Fatalf("CheckCompatibility failed: %v", err)
	}
	if check.IsCompatible {
		t.Error("restored schedule still differs from the configuration")
	}
}

func TestCheckCompatibility_MissingSnapshot(t *testing.T) {
	f := newFixture(t)

	id, err := f.store.CreateSchedule(context.Background(), &models.Schedule{
		SchoolID: f.schoolID,
		CourseID: f.courseID,
		Name:     "legacy",
		IsActive: true,
	})
	if err != nil {
		t.Fatalf("CreateSchedule failed: %v", err)
	}

	check, err := f.svc.CheckCompatibility(f.ctx, id)
	if err != nil {
		t.Fatalf("CheckCompatibility failed: %v", err)
	}
	if check.Recommendation != string(compat.RecommendRecreate) || check.CanAutoMigrate {
		t.Errorf("got %+v, want recreate", check)
	}
}

func TestMarkDeprecatedForLevel_CountsOnlyNewlyMarked(t *testing.T) {
	f := newFixture(t)

	f.createSchedule(t, "a")
	f.createSchedule(t, "b")

	n, err := f.svc.MarkDeprecatedForLevel(f.ctx, f.schoolID, "BASIC")
	if err != nil {
		t.Fatalf("MarkDeprecatedForLevel failed: %v", err)
	}
	if n != 2 {
		t.Errorf("marked = %d, want 2", n)
	}

	n, err = f.svc.MarkDeprecatedForLevel(f.ctx, f.schoolID, "BASIC")
	if err != nil {
		t.Fatalf("MarkDeprecatedForLevel failed: %v", err)
	}
	if n != 0 {
		t.Errorf("second pass marked = %d, want 0", n)
	}
}

func TestDeprecatedStats(t *testing.T) {
	f := newFixture(t)

	stats, err := f.svc.DeprecatedStats(f.ctx, f.schoolID)
	if err != nil {
		t.Fatalf("DeprecatedStats failed: %v", err)
	}
	if stats.Total != 0 || stats.Percentage != 0 {
		t.Errorf("empty school stats = %+v", stats)
	}

	a := f.createSchedule(t, "a")
	f.createSchedule(t, "b")
	f.createSchedule(t, "c")

	if _, err := f.svc.MarkDeprecatedForLevel(f.ctx, f.schoolID, "BASIC"); err != nil {
		t.Fatalf("MarkDeprecatedForLevel failed: %v", err)
	}
	if _, err := f.svc.RestoreSchedule(f.ctx, a.ID); err != nil {
		t.Fatalf("RestoreSchedule failed: %v", err)
	}

	stats, err = f.svc.DeprecatedStats(f.ctx, f.schoolID)
	if err != nil {
		t.Fatalf("DeprecatedStats failed: %v", err)
	}
	if stats.Total != 3 || stats.Deprecated != 2 || stats.Percentage != 67 {
		t.Errorf("stats = %+v, want 3/2/67", stats)
	}
}

func TestDeprecatedStatsRounding(t *testing.T) {
	tests := []struct {
		total, deprecated, want int
	}{
		{0, 0, 0},
		{3, 1, 33},
		{3, 2, 67},
		{8, 1, 13},
		{4, 4, 100},
	}

	for _, tt := range tests {
		if got := deprecatedStats(tt.total, tt.deprecated).Percentage; got != tt.want {
			t.Errorf("deprecatedStats(%d, %d) = %d, want %d", tt.total, tt.deprecated, got, tt.want)
		}
	}
}

func TestTimeSlotsAndBlocks(t *testing.T) {
	f := newFixture(t)

	grid, err := f.svc.GetTimeSlots(f.ctx, f.schoolID, "BASIC")
	if err != nil {
		t.Fatalf("GetTimeSlots failed: %v", err)
	}
	if grid.Blocks != 10 {
		t.Errorf("blocks = %d, want 10", grid.Blocks)
	}
	if last := grid.Slots[len(grid.Slots)-1]; last.EndTime != "16:45" {
		t.Errorf("last slot ends %s, want 16:45", last.EndTime)
	}

	block, err := f.svc.CheckBlock(f.ctx, f.schoolID, "BASIC", 5)
	if err != nil {
		t.Fatalf("CheckBlock failed: %v", err)
	}
	if !block.InRange || block.MaxBlocks != 12 {
		t.Errorf("CheckBlock(5) = %+v", block)
	}

	block, err = f.svc.CheckBlock(f.ctx, f.schoolID, "BASIC", 13)
	if err != nil {
		t.Fatalf("CheckBlock failed: %v", err)
	}
	if block.InRange {
		t.Error("block 13 should be out of range")
	}
}

func TestPreviewTimeSlots(t *testing.T) {
	f := newFixture(t)

	grid, err := f.svc.PreviewTimeSlots(f.ctx, &api.LevelConfigRequest{
		AcademicLevel: "middle",
		StartTime:     "08:00",
		EndTime:       "11:00",
		BlockDuration: 60,
	})
	if err != nil {
		t.Fatalf("PreviewTimeSlots failed: %v", err)
	}
	if grid.AcademicLevel != "MIDDLE" || grid.Blocks != 3 || len(grid.Slots) != 3 {
		t.Errorf("preview = %+v", grid)
	}

	_, err = f.svc.PreviewTimeSlots(f.ctx, &api.LevelConfigRequest{AcademicLevel: "MIDDLE", StartTime: "11:00", EndTime: "08:00", BlockDuration: 60})
	if !errors.Is(err, response.ErrValidation) {
		t.Errorf("error = %v, want ErrValidation", err)
	}
}

func TestAuthorization(t *testing.T) {
	f := newFixture(t)
	schedule := f.createSchedule(t, "Horario 3B")

	stranger := auth.WithPrincipal(context.Background(), auth.Principal{UserID: "someone-else"})
	admin := auth.WithPrincipal(context.Background(), auth.Principal{UserID: "root", Roles: []string{auth.RoleAdmin}})
	anonymous := context.Background()

	tests := []struct {
		name    string
		ctx     context.Context
		wantErr error
	}{
		{name: "anonymous", ctx: anonymous, wantErr: response.ErrUnauthorized},
		{name: "stranger", ctx: stranger, wantErr: response.ErrForbidden},
		{name: "admin", ctx: admin, wantErr: nil},
		{name: "owner", ctx: f.ctx, wantErr: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.GetLevelConfig(tt.ctx, f.schoolID, "BASIC")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("GetLevelConfig error = %v, want %v", err, tt.wantErr)
			}

			_, err = f.svc.RestoreSchedule(tt.ctx, schedule.ID)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("RestoreSchedule error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNotFound(t *testing.T) {
	f := newFixture(t)

	if _, err := f.svc.GetLevelConfig(f.ctx, "missing-school", "BASIC"); !errors.Is(err, response.ErrNotFound) {
		t.Errorf("GetLevelConfig error = %v, want ErrNotFound", err)
	}
	if _, err := f.svc.GetSchedule(f.ctx, "missing-schedule"); !errors.Is(err, response.ErrNotFound) {
		t.Errorf("GetSchedule error = %v, want ErrNotFound", err)
	}
	if _, err := f.svc.CreateSchedule(f.ctx, &api.ScheduleRequest{CourseID: "missing-course", Name: "x"}); !errors.Is(err, response.ErrNotFound) {
		t.Errorf("CreateSchedule error = %v, want ErrNotFound", err)
	}
}

func TestAnonymousRejectedBeforeLookup(t *testing.T) {
	f := newFixture(t)
	anonymous := context.Background()

	if _, err := f.svc.GetSchedule(anonymous, "missing-schedule"); !errors.Is(err, response.ErrUnauthorized) {
		t.Errorf("GetSchedule error = %v, want ErrUnauthorized", err)
	}
	if _, err := f.svc.CheckCompatibility(anonymous, "missing-schedule"); !errors.Is(err, response.ErrUnauthorized) {
		t.Errorf("CheckCompatibility error = %v, want ErrUnauthorized", err)
	}
	if _, err := f.svc.RestoreSchedule(anonymous, "missing-schedule"); !errors.Is(err, response.ErrUnauthorized) {
		t.Errorf("RestoreSchedule error = %v, want ErrUnauthorized", err)
	}
	if _, err := f.svc.CreateSchedule(anonymous, &api.ScheduleRequest{CourseID: "missing-course", Name: "x"}); !errors.Is(err, response.ErrUnauthorized) {
		t.Errorf("CreateSchedule error = %v, want ErrUnauthorized", err)
	}
	if _, err := f.svc.CreateSchedule(anonymous, &api.ScheduleRequest{}); !errors.Is(err, response.ErrUnauthorized) {
		t.Errorf("CreateSchedule with empty body error = %v, want ErrUnauthorized", err)
	}
}

func TestCreateSchedule_Validation(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name string
		req  *api.ScheduleRequest
		want int
	}{
		{name: "empty", req: &api.ScheduleRequest{}, want: 2},
		{name: "blank name", req: &api.ScheduleRequest{CourseID: f.courseID, Name: "  "}, want: 1},
		{name: "blank course", req: &api.ScheduleRequest{CourseID: " ", Name: "Horario"}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.CreateSchedule(f.ctx, tt.req)

			var vErr *response.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("error = %v, want *response.ValidationError", err)
			}
			if len(vErr.Problems) != tt.want {
				t.Errorf("problems = %q, want %d", vErr.Problems, tt.want)
			}
		})
	}
}
