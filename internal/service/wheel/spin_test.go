package wheel

import (
	"context"
	"errors"
	"sync"
	"testing"

	"wheel_backend/internal/config"
	"wheel_backend/internal/model"
	"wheel_backend/internal/repository"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

// ---- фейки хранилища ----

// memStore - состояние "БД" для тестов. Методы репозиториев не берут
// блокировку сами: во время транзакции ее держит memTxManager
type memStore struct {
	mu       sync.Mutex
	balances map[int]int64
	jackpot  int64
	bets     []model.Bet
}

func newMemStore() *memStore {
	return &memStore{balances: make(map[int]int64)}
}

// memTxManager сериализует транзакции и откатывает состояние при ошибке,
// имитируя all-or-nothing поведение настоящего менеджера транзакций
type memTxManager struct {
	st *memStore
}

func (m *memTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()

	balances := make(map[int]int64, len(m.st.balances))
	for k, v := range m.st.balances {
		balances[k] = v
	}
	jackpot := m.st.jackpot
	betsLen := len(m.st.bets)

	if err := fn(ctx); err != nil {
		m.st.balances = balances
		m.st.jackpot = jackpot
		m.st.bets = m.st.bets[:betsLen]
		return err
	}
	return nil
}

func (m *memTxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}

type memUserRepo struct {
	st *memStore
}

func (r *memUserRepo) CreateUser(_ context.Context, user *model.User) (int, error) {
	id := len(r.st.balances) + 1
	r.st.balances[id] = user.Balance
	return id, nil
}

func (r *memUserRepo) GetUserByLogin(context.Context, string) (*model.User, error) {
	return nil, errors.New("not implemented")
}

func (r *memUserRepo) GetUserByID(context.Context, int) (*model.User, error) {
	return nil, errors.New("not implemented")
}

func (r *memUserRepo) GetBalanceForUpdate(_ context.Context, id int) (int64, error) {
	balance, ok := r.st.balances[id]
	if !ok {
		return 0, repository.ErrUserNotFound
	}
	return balance, nil
}

func (r *memUserRepo) UpdateBalance(_ context.Context, id int, balance int64) error {
	r.st.balances[id] = balance
	return nil
}

type memBetRepo struct {
	st         *memStore
	failInsert bool
}

func (r *memBetRepo) CreateBet(_ context.Context, bet *model.Bet) error {
	if r.failInsert {
		return errors.New("insert failed")
	}
	r.st.bets = append(r.st.bets, *bet)
	return nil
}

func (r *memBetRepo) GetRecentBets(_ context.Context, userID int, limit uint64) ([]model.Bet, error) {
	var bets []model.Bet
	for i := len(r.st.bets) - 1; i >= 0 && uint64(len(bets)) < limit; i-- {
		if r.st.bets[i].UserID == userID {
			bets = append(bets, r.st.bets[i])
		}
	}
	return bets, nil
}

type memJackpotRepo struct {
	st *memStore
}

func (r *memJackpotRepo) GetJackpot(context.Context) (int64, error) {
	return r.st.jackpot, nil
}

func (r *memJackpotRepo) Accumulate(_ context.Context, delta int64) (int64, error) {
	next := r.st.jackpot + delta
	if next < 0 {
		next = 0
	}
	r.st.jackpot = next
	return next, nil
}

func (r *memJackpotRepo) SetJackpot(_ context.Context, value int64) error {
	if value < 0 {
		value = 0
	}
	r.st.jackpot = value
	return nil
}

// ---- фейки розыгрыша и рассылки ----

// fixedDrawer всегда возвращает сектор с заданным именем
type fixedDrawer struct {
	name  string
	calls int
	mu    sync.Mutex
}

func (d *fixedDrawer) Draw(outcomes []model.Outcome) (model.Outcome, error) {
	d.mu.Lock()
	d.calls++
	d.mu.Unlock()

	for _, o := range outcomes {
		if o.Name == d.name {
			return o, nil
		}
	}
	return model.Outcome{}, errors.New("outcome not in catalog")
}

func (d *fixedDrawer) callCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.calls
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []string
}

func (n *recordingNotifier) Broadcast(event string, _ any) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
}

func (n *recordingNotifier) eventCount(event string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	count := 0
	for _, e := range n.events {
		if e == event {
			count++
		}
	}
	return count
}

// ---- конфигурация для тестов ----

type testWheelConfig struct {
	outcomes []config.WheelOutcome
}

func (testWheelConfig) MaxBet() int64             { return 1000000 }
func (testWheelConfig) JackpotRatePercent() int64 { return 5 }
func (testWheelConfig) StartBalance() int64       { return 1000 }
func (c testWheelConfig) Outcomes() []config.WheelOutcome {
	return c.outcomes
}

func newTestConfig() testWheelConfig {
	return testWheelConfig{outcomes: []config.WheelOutcome{
		{Name: "A", Multiplier: 5},
		{Name: "B", Multiplier: 10},
	}}
}

type testEnv struct {
	st       *memStore
	betRepo  *memBetRepo
	notifier *recordingNotifier
	serv     *serv
}

func newTestEnv(drawer Drawer) *testEnv {
	st := newMemStore()
	betRepo := &memBetRepo{st: st}
	notifier := &recordingNotifier{}
	s := NewWheelService(
		newTestConfig(),
		drawer,
		&memUserRepo{st: st},
		betRepo,
		&memJackpotRepo{st: st},
		&memTxManager{st: st},
		notifier,
	)
	return &testEnv{
		st:       st,
		betRepo:  betRepo,
		notifier: notifier,
		serv:     s.(*serv),
	}
}

// ---- тесты ----

func TestSpinWin(t *testing.T) {
	env := newTestEnv(&fixedDrawer{name: "A"})
	env.st.balances[1] = 100

	res, err := env.serv.Spin(context.Background(), 1, model.WheelSpin{Selection: "A", Bet: 20})
	if err != nil {
		t.Fatalf("Spin() error = %v", err)
	}

	if res.Result != model.ResultWin {
		t.Errorf("Result = %q, want WIN", res.Result)
	}
	if res.Payout != 100 {
		t.Errorf("Payout = %d, want 100", res.Payout)
	}
	if res.Balance != 180 {
		t.Errorf("Balance = %d, want 180 (100 - 20 + 100)", res.Balance)
	}
	if env.st.balances[1] != 180 {
		t.Errorf("stored balance = %d, want 180", env.st.balances[1])
	}
	if env.st.jackpot != 1 {
		t.Errorf("jackpot = %d, want floor(20*0.05) = 1", env.st.jackpot)
	}
	if res.RoundID == "" {
		t.Error("RoundID is empty")
	}

	if len(env.st.bets) != 1 {
		t.Fatalf("bets recorded = %d, want 1", len(env.st.bets))
	}
	bet := env.st.bets[0]
	if bet.RoundID != res.RoundID || bet.Payout != 100 || bet.BalanceAfter != 180 ||
		bet.Result != model.ResultWin || bet.ServerPick != "A" || bet.Amount != 20 {
		t.Errorf("recorded bet = %+v does not match result %+v", bet, res)
	}
}

func TestSpinLose(t *testing.T) {
	env := newTestEnv(&fixedDrawer{name: "B"})
	env.st.balances[1] = 100

	res, err := env.serv.Spin(context.Background(), 1, model.WheelSpin{Selection: "A", Bet: 20})
	if err != nil {
		t.Fatalf("Spin() error = %v", err)
	}

	if res.Result != model.ResultLose {
		t.Errorf("Result = %q, want LOSE", res.Result)
	}
	if res.Payout != 0 {
		t.Errorf("Payout = %d, want 0", res.Payout)
	}
	if res.Balance != 80 {
		t.Errorf("Balance = %d, want 80", res.Balance)
	}
	// Отчисление в джекпот не зависит от исхода
	if env.st.jackpot != 1 {
		t.Errorf("jackpot = %d, want 1", env.st.jackpot)
	}
}

func TestSpinUnknownSelection(t *testing.T) {
	drawer := &fixedDrawer{name: "A"}
	env := newTestEnv(drawer)
	env.st.balances[1] = 100

	_, err := env.serv.Spin(context.Background(), 1, model.WheelSpin{Selection: "Z", Bet: 20})
	if !errors.Is(err, ErrUnknownSelection) {
		t.Fatalf("Spin() error = %v, want ErrUnknownSelection", err)
	}

	// Отказ до розыгрыша: состояние нетронуто, сектор не выбирался
	if drawer.callCount() != 0 {
		t.Errorf("drawer called %d times, want 0", drawer.callCount())
	}
	if env.st.balances[1] != 100 || env.st.jackpot != 0 || len(env.st.bets) != 0 {
		t.Errorf("state changed on rejected wager: balance=%d jackpot=%d bets=%d",
			env.st.balances[1], env.st.jackpot, len(env.st.bets))
	}
}

func TestSpinInvalidBet(t *testing.T) {
	drawer := &fixedDrawer{name: "A"}
	env := newTestEnv(drawer)
	env.st.balances[1] = 100

	for _, bet := range []int64{0, -5, 1000001} {
		_, err := env.serv.Spin(context.Background(), 1, model.WheelSpin{Selection: "A", Bet: bet})
		if !errors.Is(err, ErrInvalidBet) {
			t.Errorf("Spin(bet=%d) error = %v, want ErrInvalidBet", bet, err)
		}
	}

	if drawer.callCount() != 0 {
		t.Errorf("drawer called %d times, want 0", drawer.callCount())
	}
	if env.st.balances[1] != 100 || env.st.jackpot != 0 {
		t.Errorf("state changed on rejected wager")
	}
}

func TestSpinInsufficientBalance(t *testing.T) {
	drawer := &fixedDrawer{name: "A"}
	env := newTestEnv(drawer)
	env.st.balances[1] = 10

	_, err := env.serv.Spin(context.Background(), 1, model.WheelSpin{Selection: "A", Bet: 50})
	if !errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("Spin() error = %v, want ErrInsufficientBalance", err)
	}

	// Средств не хватило - розыгрыш не выполнялся
	if drawer.callCount() != 0 {
		t.Errorf("drawer called %d times, want 0", drawer.callCount())
	}
	if env.st.balances[1] != 10 || env.st.jackpot != 0 || len(env.st.bets) != 0 {
		t.Errorf("state changed on rejected wager")
	}
}

func TestSpinStorageFailureRollsBack(t *testing.T) {
	env := newTestEnv(&fixedDrawer{name: "A"})
	env.st.balances[1] = 100
	env.betRepo.failInsert = true

	_, err := env.serv.Spin(context.Background(), 1, model.WheelSpin{Selection: "A", Bet: 20})
	if err == nil {
		t.Fatal("Spin() error = nil, want storage error")
	}

	// Частичного применения нет: баланс и джекпот откатились вместе
	if env.st.balances[1] != 100 {
		t.Errorf("balance = %d, want 100 after rollback", env.st.balances[1])
	}
	if env.st.jackpot != 0 {
		t.Errorf("jackpot = %d, want 0 after rollback", env.st.jackpot)
	}
	if len(env.st.bets) != 0 {
		t.Errorf("bets recorded = %d, want 0 after rollback", len(env.st.bets))
	}

	// Зафиксированной ставки нет - нет и уведомлений
	if env.notifier.eventCount(EventSpinResult) != 0 {
		t.Error("spin result broadcast for an unsettled wager")
	}
}

func TestSpinBroadcastsAfterCommit(t *testing.T) {
	env := newTestEnv(&fixedDrawer{name: "B"})
	env.st.balances[1] = 100

	if _, err := env.serv.Spin(context.Background(), 1, model.WheelSpin{Selection: "A", Bet: 20}); err != nil {
		t.Fatalf("Spin() error = %v", err)
	}

	if got := env.notifier.eventCount(EventJackpotUpdate); got != 1 {
		t.Errorf("jackpot:update broadcasts = %d, want 1", got)
	}
	if got := env.notifier.eventCount(EventSpinResult); got != 1 {
		t.Errorf("spin:result broadcasts = %d, want 1", got)
	}
}

func TestConcurrentSpinsSamePlayer(t *testing.T) {
	env := newTestEnv(&fixedDrawer{name: "B"})
	const (
		spins = 10
		bet   = 100
	)
	env.st.balances[1] = spins * bet

	var wg sync.WaitGroup
	errs := make([]error, spins)
	for i := 0; i < spins; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = env.serv.Spin(context.Background(), 1, model.WheelSpin{Selection: "A", Bet: bet})
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("spin %d error = %v", i, err)
		}
	}

	// Все проигрыши: итоговый баланс ровно ноль, без потерянных обновлений
	if env.st.balances[1] != 0 {
		t.Errorf("final balance = %d, want 0", env.st.balances[1])
	}
	if want := int64(spins * bet * 5 / 100); env.st.jackpot != want {
		t.Errorf("jackpot = %d, want %d", env.st.jackpot, want)
	}
	if len(env.st.bets) != spins {
		t.Errorf("bets recorded = %d, want %d", len(env.st.bets), spins)
	}
}

func TestConcurrentSpinsNoOverdraft(t *testing.T) {
	env := newTestEnv(&fixedDrawer{name: "B"})
	env.st.balances[1] = 100

	const spins = 10

	var wg sync.WaitGroup
	errs := make([]error, spins)
	for i := 0; i < spins; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = env.serv.Spin(context.Background(), 1, model.WheelSpin{Selection: "A", Bet: 50})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrInsufficientBalance):
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	// Средств хватает ровно на две ставки; овердрафт невозможен
	if succeeded != 2 {
		t.Errorf("succeeded = %d, want 2", succeeded)
	}
	if env.st.balances[1] != 0 {
		t.Errorf("final balance = %d, want 0", env.st.balances[1])
	}
	if env.st.jackpot != 4 {
		t.Errorf("jackpot = %d, want 2 * floor(50*0.05) = 4", env.st.jackpot)
	}
}

func TestConcurrentJackpotAcrossPlayers(t *testing.T) {
	env := newTestEnv(&fixedDrawer{name: "B"})
	const (
		players       = 4
		spinsEach     = 25
		bet     int64 = 20
	)
	for p := 1; p <= players; p++ {
		env.st.balances[p] = int64(spinsEach) * bet
	}

	var wg sync.WaitGroup
	for p := 1; p <= players; p++ {
		for i := 0; i < spinsEach; i++ {
			wg.Add(1)
			go func(p int) {
				defer wg.Done()
				if _, err := env.serv.Spin(context.Background(), p, model.WheelSpin{Selection: "A", Bet: bet}); err != nil {
					t.Errorf("player %d spin error = %v", p, err)
				}
			}(p)
		}
	}
	wg.Wait()

	// Джекпот равен точной сумме всех отчислений независимо от порядка
	want := int64(players*spinsEach) * (bet * 5 / 100)
	if env.st.jackpot != want {
		t.Errorf("jackpot = %d, want %d", env.st.jackpot, want)
	}
	for p := 1; p <= players; p++ {
		if env.st.balances[p] != 0 {
			t.Errorf("player %d balance = %d, want 0", p, env.st.balances[p])
		}
	}
}

func TestHistoryMostRecentFirst(t *testing.T) {
	env := newTestEnv(&fixedDrawer{name: "B"})
	env.st.balances[1] = 100

	var rounds []string
	for i := 0; i < 3; i++ {
		res, err := env.serv.Spin(context.Background(), 1, model.WheelSpin{Selection: "A", Bet: 10})
		if err != nil {
			t.Fatalf("Spin() error = %v", err)
		}
		rounds = append(rounds, res.RoundID)
	}

	bets, err := env.serv.History(context.Background(), 1)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(bets) != 3 {
		t.Fatalf("History() len = %d, want 3", len(bets))
	}
	for i := 0; i < 3; i++ {
		if bets[i].RoundID != rounds[2-i] {
			t.Errorf("History()[%d].RoundID = %q, want %q", i, bets[i].RoundID, rounds[2-i])
		}
	}
}
