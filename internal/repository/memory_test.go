package repository_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"career_advisor_backend/internal/model"
	"career_advisor_backend/internal/repository"
	"career_advisor_backend/internal/util"
)

func fixedClock(t time.Time) repository.Clock {
	return func() time.Time { return t }
}

// ── Career goals ──────────────────────────────────────────────────────────

func TestCareerGoalRepository_AssignsSequentialIDs(t *testing.T) {
	repo := repository.NewCareerGoalRepository(repository.NewMemoryDB())

	for want := uint(1); want <= 3; want++ {
		goal := &model.CareerGoal{Goal: "Data Scientist", Skills: "Python", ExperienceLevel: "Beginner"}
		if err := repo.Create(goal); err != nil {
			t.Fatalf("Create: unexpected error: %v", err)
		}
		if goal.ID != want {
			t.Errorf("Create #%d assigned id %d, want %d", want, goal.ID, want)
		}
	}
}

func TestCareerGoalRepository_StampsCreatedAt(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := repository.NewCareerGoalRepository(repository.NewMemoryDB(repository.WithClock(fixedClock(now))))

	goal := &model.CareerGoal{Goal: "Frontend Developer", Skills: "HTML", ExperienceLevel: "Beginner"}
	if err := repo.Create(goal); err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}
	if !goal.CreatedAt.Equal(now) {
		t.Errorf("CreatedAt = %v, want %v", goal.CreatedAt, now)
	}
}

func TestCareerGoalRepository_FindByUserIDKeepsInsertionOrder(t *testing.T) {
	repo := repository.NewCareerGoalRepository(repository.NewMemoryDB())

	inputs := []struct {
		userID *uint
		goal   string
	}{
		{model.UintPtr(1), "first"},
		{model.UintPtr(2), "other user"},
		{model.UintPtr(1), "second"},
		{nil, "anonymous"},
		{model.UintPtr(1), "third"},
	}
	for _, in := range inputs {
		if err := repo.Create(&model.CareerGoal{UserID: in.userID, Goal: in.goal}); err != nil {
			t.Fatalf("Create(%q): unexpected error: %v", in.goal, err)
		}
	}

	got, err := repo.FindByUserID(1)
	if err != nil {
		t.Fatalf("FindByUserID: unexpected error: %v", err)
	}
	want := []string{"first", "second", "third"}
	if len(got) != len(want) {
		t.Fatalf("FindByUserID returned %d goals, want %d", len(got), len(want))
	}
	for i, g := range got {
		if g.Goal != want[i] {
			t.Errorf("goal[%d] = %q, want %q", i, g.Goal, want[i])
		}
	}
}

func TestCareerGoalRepository_UnknownUserReturnsEmptySlice(t *testing.T) {
	repo := repository.NewCareerGoalRepository(repository.NewMemoryDB())

	got, err := repo.FindByUserID(42)
	if err != nil {
		t.Fatalf("FindByUserID: unexpected error: %v", err)
	}
	if got == nil {
		t.Fatal("FindByUserID returned nil, want empty non-nil slice")
	}
	if len(got) != 0 {
		t.Errorf("FindByUserID returned %d goals, want 0", len(got))
	}
}

func TestCareerGoalRepository_ZeroUserIDIsStoredAsNil(t *testing.T) {
	repo := repository.NewCareerGoalRepository(repository.NewMemoryDB())

	goal := &model.CareerGoal{UserID: model.UintPtr(0), Goal: "DevOps Engineer"}
	if err := repo.Create(goal); err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}
	if goal.UserID != nil {
		t.Errorf("UserID = %d, want nil", *goal.UserID)
	}
}

func TestCareerGoalRepository_FindByIDMissing(t *testing.T) {
	repo := repository.NewCareerGoalRepository(repository.NewMemoryDB())

	_, err := repo.FindByID(99)
	if !errors.Is(err, util.ErrRecordNotFound) {
		t.Errorf("FindByID(99) error = %v, want ErrRecordNotFound", err)
	}
}

// Returned records are copies: mutating them must not alter the store.
func TestCareerGoalRepository_ReturnsCopies(t *testing.T) {
	repo := repository.NewCareerGoalRepository(repository.NewMemoryDB())

	goal := &model.CareerGoal{UserID: model.UintPtr(1), Goal: "Backend Developer"}
	if err := repo.Create(goal); err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	got, _ := repo.FindByID(goal.ID)
	got.Goal = "mutated"
	*got.UserID = 7

	again, _ := repo.FindByID(goal.ID)
	if again.Goal != "Backend Developer" {
		t.Errorf("stored goal = %q after caller mutation, want unchanged", again.Goal)
	}
	if again.UserID == nil || *again.UserID != 1 {
		t.Errorf("stored userId changed after caller mutation")
	}
}

// Concurrent creates must never hand out the same id.
func TestCareerGoalRepository_ConcurrentCreatesHaveUniqueIDs(t *testing.T) {
	repo := repository.NewCareerGoalRepository(repository.NewMemoryDB())

	const n = 200
	ids := make(chan uint, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			goal := &model.CareerGoal{UserID: model.UintPtr(1), Goal: "Cloud Architect"}
			if err := repo.Create(goal); err != nil {
				t.Errorf("Create: unexpected error: %v", err)
				return
			}
			ids <- goal.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[uint]bool, n)
	for id := range ids {
		if seen[id] {
			t.Errorf("id %d assigned twice", id)
		}
		seen[id] = true
	}
	if len(seen) != n {
		t.Errorf("got %d distinct ids, want %d", len(seen), n)
	}
	for id := uint(1); id <= n; id++ {
		if !seen[id] {
			t.Errorf("id %d never assigned, ids must be contiguous from 1", id)
		}
	}
}

// ── Learning paths ────────────────────────────────────────────────────────

func TestLearningPathRepository_FiltersByCareerGoal(t *testing.T) {
	db := repository.NewMemoryDB()
	repo := repository.NewLearningPathRepository(db)

	for _, id := range []uint{1, 2, 1} {
		path := &model.LearningPath{CareerGoalID: model.UintPtr(id), Title: "path"}
		if err := repo.Create(path); err != nil {
			t.Fatalf("Create: unexpected error: %v", err)
		}
	}

	got, err := repo.FindByCareerGoalID(1)
	if err != nil {
		t.Fatalf("FindByCareerGoalID: unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("FindByCareerGoalID(1) returned %d paths, want 2", len(got))
	}
	if got[0].ID != 1 || got[1].ID != 3 {
		t.Errorf("ids = [%d %d], want [1 3]", got[0].ID, got[1].ID)
	}
}

func TestLearningPathRepository_StepsAreCopied(t *testing.T) {
	repo := repository.NewLearningPathRepository(repository.NewMemoryDB())

	path := &model.LearningPath{
		Title: "path",
		Steps: model.Steps{{Icon: model.IconBook, Title: "Learn", Description: "d", Skills: []string{"Go"}}},
	}
	if err := repo.Create(path); err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	got, _ := repo.FindByID(path.ID)
	got.Steps[0].Skills[0] = "mutated"

	again, _ := repo.FindByID(path.ID)
	if again.Steps[0].Skills[0] != "Go" {
		t.Errorf("stored step skill = %q after caller mutation, want %q", again.Steps[0].Skills[0], "Go")
	}
}

// Id counters are per entity: a goal and a path may both have id 1.
func TestMemoryDB_IDCountersArePerEntity(t *testing.T) {
	db := repository.NewMemoryDB()
	goals := repository.NewCareerGoalRepository(db)
	paths := repository.NewLearningPathRepository(db)

	goal := &model.CareerGoal{Goal: "g"}
	path := &model.LearningPath{Title: "p"}
	if err := goals.Create(goal); err != nil {
		t.Fatal(err)
	}
	if err := paths.Create(path); err != nil {
		t.Fatal(err)
	}
	if goal.ID != 1 || path.ID != 1 {
		t.Errorf("goal id %d, path id %d, want both 1", goal.ID, path.ID)
	}
}

// ── Advice ────────────────────────────────────────────────────────────────

func TestAdviceRepository_RejectsBlankAdvice(t *testing.T) {
	repo := repository.NewAdviceRepository(repository.NewMemoryDB())

	for _, text := range []string{"", "   ", "\n\t"} {
		err := repo.Create(&model.AiAdvice{CareerGoalID: model.UintPtr(1), Advice: text})
		if !errors.Is(err, util.ErrEmptyAdvice) {
			t.Errorf("Create(advice=%q) error = %v, want ErrEmptyAdvice", text, err)
		}
	}
	if n := repo.Count(); n != 0 {
		t.Errorf("Count() = %d after rejected creates, want 0", n)
	}
}

// A rejected insert must not consume an id.
func TestAdviceRepository_RejectedInsertKeepsCounter(t *testing.T) {
	repo := repository.NewAdviceRepository(repository.NewMemoryDB())

	_ = repo.Create(&model.AiAdvice{Advice: ""})
	advice := &model.AiAdvice{Advice: "Keep learning"}
	if err := repo.Create(advice); err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}
	if advice.ID != 1 {
		t.Errorf("id = %d, want 1", advice.ID)
	}
}

func TestAdviceRepository_ConversationOrderAndNullQuestion(t *testing.T) {
	repo := repository.NewAdviceRepository(repository.NewMemoryDB())

	entries := []*model.AiAdvice{
		{CareerGoalID: model.UintPtr(5), Advice: "general"},
		{CareerGoalID: model.UintPtr(5), Question: model.StringPtr("Which certifications?"), Advice: "certs"},
		{CareerGoalID: model.UintPtr(5), Question: model.StringPtr("What salary?"), Advice: "pay"},
	}
	for _, e := range entries {
		if err := repo.Create(e); err != nil {
			t.Fatalf("Create: unexpected error: %v", err)
		}
	}

	got, err := repo.FindByCareerGoalID(5)
	if err != nil {
		t.Fatalf("FindByCareerGoalID: unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d advice, want 3", len(got))
	}
	if got[0].Question != nil {
		t.Errorf("first question = %q, want nil", *got[0].Question)
	}
	for i, want := range []string{"general", "certs", "pay"} {
		if got[i].Advice != want {
			t.Errorf("advice[%d] = %q, want %q", i, got[i].Advice, want)
		}
	}
}

// ── Accounts ──────────────────────────────────────────────────────────────

func TestAccountRepository_UsernameIsUnique(t *testing.T) {
	repo := repository.NewAccountRepository(repository.NewMemoryDB())

	if err := repo.Create(&model.Account{Username: "demo", Password: "hash"}); err != nil {
		t.Fatalf("first Create: unexpected error: %v", err)
	}
	err := repo.Create(&model.Account{Username: "demo", Password: "other"})
	if !errors.Is(err, util.ErrUsernameTaken) {
		t.Errorf("duplicate Create error = %v, want ErrUsernameTaken", err)
	}

	found, err := repo.FindByUsername("demo")
	if err != nil {
		t.Fatalf("FindByUsername: unexpected error: %v", err)
	}
	if found.ID != 1 {
		t.Errorf("FindByUsername id = %d, want 1", found.ID)
	}
}
