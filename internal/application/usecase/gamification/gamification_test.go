package gamification

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

func tx(t *testing.T, typ entity.TransactionType, amount, date string) entity.Transaction {
	t.Helper()
	amt, err := decimal.NewFromString(amount)
	if err != nil {
		t.Fatalf("bad amount %q: %v", amount, err)
	}
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		t.Fatalf("bad date %q: %v", date, err)
	}
	return *entity.NewTransaction(typ, amt, "Merchant", "Food", day, "")
}

func goal(t *testing.T, target, current string) entity.Goal {
	t.Helper()
	tgt, _ := decimal.NewFromString(target)
	cur, _ := decimal.NewFromString(current)
	return *entity.NewGoal("Goal", tgt, cur, nil, entity.GoalTypeSave, nil)
}

func TestComputeStreakEmptyLedger(t *testing.T) {
	now := time.Date(2024, time.March, 25, 12, 0, 0, 0, time.UTC)
	// Zero budget and zero spend on every day: the whole window counts.
	if got := ComputeStreak(nil, now); got != 30 {
		t.Fatalf("streak = %d, want 30", got)
	}
}

func TestComputeStreakStopsAtFirstOverspend(t *testing.T) {
	now := time.Date(2024, time.March, 25, 12, 0, 0, 0, time.UTC)
	// Month expenses 3000 over 30 days: budget 100/day, limit 110.
	transactions := []entity.Transaction{
		tx(t, entity.TransactionTypeExpense, "100", "2024-03-25"),
		tx(t, entity.TransactionTypeExpense, "110", "2024-03-24"),
		tx(t, entity.TransactionTypeExpense, "111", "2024-03-23"),
		tx(t, entity.TransactionTypeExpense, "2679", "2024-03-01"),
	}
	// Today and yesterday are within the limit; two days ago breaks it, and
	// the earlier quiet days behind the break never count.
	if got := ComputeStreak(transactions, now); got != 2 {
		t.Fatalf("streak = %d, want 2", got)
	}
}

func TestComputeScoreComposite(t *testing.T) {
	now := time.Date(2024, time.March, 25, 12, 0, 0, 0, time.UTC)

	// Current month: income 50000, expenses 40000 (savings rate 20%).
	transactions := []entity.Transaction{
		tx(t, entity.TransactionTypeIncome, "50000", "2024-03-02"),
		// Breaks the streak walk 20 days back: 5000 > 110% of 40000/30.
		tx(t, entity.TransactionTypeExpense, "5000", "2024-03-05"),
		tx(t, entity.TransactionTypeExpense, "2100", "2024-03-01"),
	}
	for i := 0; i < 47; i++ {
		transactions = append(transactions, tx(t, entity.TransactionTypeExpense, "700", "2024-03-03"))
	}
	// Pad the ledger to 500 transactions with history outside the current
	// month; these move only the consistency component.
	for i := 0; i < 450; i++ {
		transactions = append(transactions, tx(t, entity.TransactionTypeIncome, "1", "2023-01-15"))
	}

	goals := []entity.Goal{goal(t, "10000", "5000")}

	score := ComputeScore(transactions, goals, now)

	// Components: savings min(20/2.5,40)=8, goals min(50/3.33,30)≈15.0,
	// streak min(20/5,20)=4, consistency min(500/100,10)=5.
	if score.Streak != 20 {
		t.Fatalf("streak = %d, want 20", score.Streak)
	}
	if score.Value != 32 {
		t.Fatalf("score = %d, want 32", score.Value)
	}
	if score.XP != 320 {
		t.Fatalf("xp = %d, want 320", score.XP)
	}
	if score.Level != 4 {
		t.Fatalf("level = %d, want 4", score.Level)
	}
}

func TestComputeScoreSkipsAbsentSignals(t *testing.T) {
	now := time.Date(2024, time.March, 25, 12, 0, 0, 0, time.UTC)
	// No income and no goals: only streak and consistency contribute.
	transactions := []entity.Transaction{
		tx(t, entity.TransactionTypeExpense, "100", "2024-03-25"),
	}

	score := ComputeScore(transactions, nil, now)
	if !score.SavingsComponent.IsZero() {
		t.Fatalf("savings component = %s, want 0 without income", score.SavingsComponent)
	}
	if !score.GoalComponent.IsZero() {
		t.Fatalf("goal component = %s, want 0 without goals", score.GoalComponent)
	}
}

func TestComputeScoreComponentCaps(t *testing.T) {
	now := time.Date(2024, time.March, 25, 12, 0, 0, 0, time.UTC)
	// Pure income month with an overshot goal: every component must stay at
	// its cap so the total cannot exceed 100.
	transactions := []entity.Transaction{
		tx(t, entity.TransactionTypeIncome, "50000", "2024-03-02"),
	}
	for i := 0; i < 2000; i++ {
		transactions = append(transactions, tx(t, entity.TransactionTypeIncome, "1", "2023-01-15"))
	}
	goals := []entity.Goal{goal(t, "100", "500")} // 500% progress

	score := ComputeScore(transactions, goals, now)
	if !score.SavingsComponent.Equal(decimal.NewFromInt(40)) {
		t.Fatalf("savings component = %s, want capped 40", score.SavingsComponent)
	}
	if !score.GoalComponent.Equal(decimal.NewFromInt(30)) {
		t.Fatalf("goal component = %s, want capped 30", score.GoalComponent)
	}
	if !score.StreakComponent.Equal(decimal.NewFromInt(6)) {
		t.Fatalf("streak component = %s, want 6 for a 30-day streak", score.StreakComponent)
	}
	if !score.ConsistencyComponent.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("consistency component = %s, want capped 10", score.ConsistencyComponent)
	}
	if score.Value > 100 {
		t.Fatalf("score = %d, must not exceed 100", score.Value)
	}
}

func TestLevelTitle(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{1, "Beginner"},
		{4, "Beginner"},
		{5, "Money Manager"},
		{10, "Budget Expert"},
		{20, "Smart Saver"},
		{30, "Wealth Builder"},
		{50, "Financial Master"},
		{99, "Financial Master"},
	}
	for _, tt := range tests {
		if got := LevelTitle(tt.level); got != tt.want {
			t.Fatalf("LevelTitle(%d) = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestEvaluateAchievements(t *testing.T) {
	transactions := []entity.Transaction{
		tx(t, entity.TransactionTypeExpense, "100", "2024-03-01"),
	}
	goals := []entity.Goal{goal(t, "1000", "100")}
	score := Score{Value: 95, Streak: 8}

	achievements := EvaluateAchievements(transactions, goals, score)
	if len(achievements) != 5 {
		t.Fatalf("got %d achievements, want 5", len(achievements))
	}

	achieved := map[string]bool{}
	for _, a := range achievements {
		achieved[a.Name] = a.Achieved
	}
	for _, name := range []string{"First Step", "Goal Setter", "Week Streak", "Perfect Score"} {
		if !achieved[name] {
			t.Fatalf("%s should be achieved", name)
		}
	}
	if achieved["Month Master"] {
		t.Fatal("Month Master requires a 30-day streak")
	}

	// Achievements are recomputed facts, not unlocked state: they drop out
	// again when the underlying condition stops holding.
	empty := EvaluateAchievements(nil, nil, Score{})
	for _, a := range empty {
		if a.Achieved {
			t.Fatalf("%s achieved with empty collections", a.Name)
		}
	}
}
