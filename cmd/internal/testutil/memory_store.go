package testutil

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/lib/pq"
	"github.com/sqlc-dev/pqtype"

	db "github.com/zhukovvlad/estimator-go/cmd/internal/db/sqlc"
)

// memState - содержимое таблиц. clone делает глубокую копию для снимков транзакций.
type memState struct {
	teams      map[int64]db.Team
	categories map[int64]db.Category
	questions  map[int64]db.Question
	nextID     int64
}

func newMemState() memState {
	return memState{
		teams:      map[int64]db.Team{},
		categories: map[int64]db.Category{},
		questions:  map[int64]db.Question{},
	}
}

func (s memState) clone() memState {
	c := memState{
		teams:      make(map[int64]db.Team, len(s.teams)),
		categories: make(map[int64]db.Category, len(s.categories)),
		questions:  make(map[int64]db.Question, len(s.questions)),
		nextID:     s.nextID,
	}
	for k, v := range s.teams {
		c.teams[k] = v
	}
	for k, v := range s.categories {
		c.categories[k] = v
	}
	for k, v := range s.questions {
		c.questions[k] = v
	}
	return c
}

// MemoryStore - db.Store в памяти для тестов сервисов.
// ExecTx работает по снимкам: изменения применяются только при успешном завершении fn.
// Уникальные ключи (team.name, category(team_id, name), question(category_id, text))
// проверяются так же, как в Postgres, с ошибкой pq 23505.
type MemoryStore struct {
	*memQueries

	mu    sync.Mutex
	state memState

	Commits   int
	Rollbacks int
}

// NewMemoryStore создает пустое хранилище.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{state: newMemState()}
	s.memQueries = &memQueries{st: &s.state, failures: map[string]error{}, mu: &s.mu}
	return s
}

func (s *MemoryStore) ExecTx(ctx context.Context, fn func(db.TxQuerier) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	work := s.state.clone()
	tx := &memTx{memQueries: &memQueries{st: &work, failures: s.failures}}
	if err := fn(tx); err != nil {
		s.Rollbacks++
		return err
	}
	s.state = work
	s.Commits++
	return nil
}

// FailCategory заставляет любую запись категории name завершаться ошибкой err.
func (s *MemoryStore) FailCategory(name string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures["category:"+name] = err
}

// FailQuestion заставляет любую запись вопроса text завершаться ошибкой err.
func (s *MemoryStore) FailQuestion(text string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures["question:"+text] = err
}

// Categories возвращает сохранённые (закоммиченные) категории, отсортированные по ID.
func (s *MemoryStore) Categories() []db.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]db.Category, 0, len(s.state.categories))
	for _, c := range s.state.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Questions возвращает сохранённые вопросы, отсортированные по ID.
func (s *MemoryStore) Questions() []db.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]db.Question, 0, len(s.state.questions))
	for _, q := range s.state.questions {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// SeedTeam добавляет команду напрямую, минуя транзакции.
func (s *MemoryStore) SeedTeam(name, passcodeHash string) db.Team {
	team, err := s.CreateTeam(context.Background(), db.CreateTeamParams{Name: name, PasscodeHash: passcodeHash})
	if err != nil {
		panic(err)
	}
	return team
}

// memTx - Querier внутри ExecTx. Точки сохранения хранят снимки рабочего состояния.
type memTx struct {
	*memQueries
	savepoints map[string][]memState
}

func (t *memTx) Savepoint(_ context.Context, name string) error {
	if t.savepoints == nil {
		t.savepoints = map[string][]memState{}
	}
	t.savepoints[name] = append(t.savepoints[name], t.st.clone())
	return nil
}

func (t *memTx) RollbackToSavepoint(_ context.Context, name string) error {
	stack := t.savepoints[name]
	if len(stack) == 0 {
		return fmt.Errorf("savepoint %q does not exist", name)
	}
	// Как и в Postgres, точка сохранения остаётся после отката к ней
	*t.st = stack[len(stack)-1].clone()
	return nil
}

func (t *memTx) ReleaseSavepoint(_ context.Context, name string) error {
	stack := t.savepoints[name]
	if len(stack) == 0 {
		return fmt.Errorf("savepoint %q does not exist", name)
	}
	t.savepoints[name] = stack[:len(stack)-1]
	return nil
}

type memQueries struct {
	st       *memState
	failures map[string]error
	// mu задан только у запросов вне транзакции, внутри ExecTx блокировка уже взята
	mu *sync.Mutex
}

func (q *memQueries) lock() func() {
	if q.mu == nil {
		return func() {}
	}
	q.mu.Lock()
	return q.mu.Unlock
}

func uniqueViolation(constraint string) error {
	return &pq.Error{Code: "23505", Message: fmt.Sprintf("duplicate key value violates unique constraint %q", constraint)}
}

func (q *memQueries) id() int64 {
	q.st.nextID++
	return q.st.nextID
}

func (q *memQueries) CreateTeam(_ context.Context, arg db.CreateTeamParams) (db.Team, error) {
	defer q.lock()()
	for _, t := range q.st.teams {
		if t.Name == arg.Name {
			return db.Team{}, uniqueViolation("teams_name_key")
		}
	}
	team := db.Team{ID: q.id(), Name: arg.Name, PasscodeHash: arg.PasscodeHash, CreatedAt: time.Now()}
	q.st.teams[team.ID] = team
	return team, nil
}

func (q *memQueries) GetTeamByID(_ context.Context, id int64) (db.Team, error) {
	defer q.lock()()
	t, ok := q.st.teams[id]
	if !ok {
		return db.Team{}, sql.ErrNoRows
	}
	return t, nil
}

func (q *memQueries) GetTeamByName(_ context.Context, name string) (db.Team, error) {
	defer q.lock()()
	for _, t := range q.st.teams {
		if t.Name == name {
			return t, nil
		}
	}
	return db.Team{}, sql.ErrNoRows
}

func (q *memQueries) SearchTeams(_ context.Context, arg db.SearchTeamsParams) ([]db.Team, error) {
	defer q.lock()()
	needle := strings.ToLower(arg.Query)
	out := []db.Team{}
	for _, t := range q.st.teams {
		if strings.Contains(strings.ToLower(t.Name), needle) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	if int(arg.RowLimit) < len(out) {
		out = out[:arg.RowLimit]
	}
	return out, nil
}

func (q *memQueries) CreateCategory(_ context.Context, arg db.CreateCategoryParams) (db.Category, error) {
	defer q.lock()()
	if err := q.failures["category:"+arg.Name]; err != nil {
		return db.Category{}, err
	}
	for _, c := range q.st.categories {
		if c.TeamID == arg.TeamID && c.Name == arg.Name {
			return db.Category{}, uniqueViolation("categories_team_id_name_key")
		}
	}
	now := time.Now()
	category := db.Category{
		ID:        q.id(),
		TeamID:    arg.TeamID,
		Name:      arg.Name,
		Rubric:    copyNullRaw(arg.Rubric),
		CreatedAt: now,
		UpdatedAt: now,
	}
	q.st.categories[category.ID] = category
	return category, nil
}

func (q *memQueries) GetCategoryByID(_ context.Context, id int64) (db.Category, error) {
	defer q.lock()()
	c, ok := q.st.categories[id]
	if !ok {
		return db.Category{}, sql.ErrNoRows
	}
	return c, nil
}

func (q *memQueries) GetCategoryByTeamAndName(_ context.Context, arg db.GetCategoryByTeamAndNameParams) (db.Category, error) {
	defer q.lock()()
	for _, c := range q.st.categories {
		if c.TeamID == arg.TeamID && c.Name == arg.Name {
			return c, nil
		}
	}
	return db.Category{}, sql.ErrNoRows
}

func (q *memQueries) ListCategoriesByTeam(_ context.Context, teamID int64) ([]db.Category, error) {
	defer q.lock()()
	out := []db.Category{}
	for _, c := range q.st.categories {
		if c.TeamID == teamID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (q *memQueries) UpdateCategoryRubric(_ context.Context, arg db.UpdateCategoryRubricParams) (db.Category, error) {
	defer q.lock()()
	c, ok := q.st.categories[arg.ID]
	if !ok {
		return db.Category{}, sql.ErrNoRows
	}
	if err := q.failures["category:"+c.Name]; err != nil {
		return db.Category{}, err
	}
	c.Rubric = copyNullRaw(arg.Rubric)
	c.UpdatedAt = time.Now()
	q.st.categories[c.ID] = c
	return c, nil
}

func (q *memQueries) CreateQuestion(_ context.Context, arg db.CreateQuestionParams) (db.Question, error) {
	defer q.lock()()
	if err := q.failures["question:"+arg.Text]; err != nil {
		return db.Question{}, err
	}
	if _, ok := q.st.categories[arg.CategoryID]; !ok {
		return db.Question{}, &pq.Error{Code: "23503", Message: "insert or update on table \"questions\" violates foreign key constraint"}
	}
	for _, existing := range q.st.questions {
		if existing.CategoryID == arg.CategoryID && existing.Text == arg.Text {
			return db.Question{}, uniqueViolation("questions_category_id_text_key")
		}
	}
	now := time.Now()
	question := db.Question{
		ID:         q.id(),
		CategoryID: arg.CategoryID,
		Text:       arg.Text,
		Options:    append(json.RawMessage(nil), arg.Options...),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	q.st.questions[question.ID] = question
	return question, nil
}

func (q *memQueries) GetQuestionByID(_ context.Context, id int64) (db.Question, error) {
	defer q.lock()()
	question, ok := q.st.questions[id]
	if !ok {
		return db.Question{}, sql.ErrNoRows
	}
	return question, nil
}

func (q *memQueries) GetQuestionByCategoryAndText(_ context.Context, arg db.GetQuestionByCategoryAndTextParams) (db.Question, error) {
	defer q.lock()()
	for _, question := range q.st.questions {
		if question.CategoryID == arg.CategoryID && question.Text == arg.Text {
			return question, nil
		}
	}
	return db.Question{}, sql.ErrNoRows
}

func (q *memQueries) ListQuestionsByCategory(_ context.Context, categoryID int64) ([]db.Question, error) {
	defer q.lock()()
	out := []db.Question{}
	for _, question := range q.st.questions {
		if question.CategoryID == categoryID {
			out = append(out, question)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (q *memQueries) UpdateQuestion(_ context.Context, arg db.UpdateQuestionParams) (db.Question, error) {
	defer q.lock()()
	question, ok := q.st.questions[arg.ID]
	if !ok {
		return db.Question{}, sql.ErrNoRows
	}
	if err := q.failures["question:"+arg.Text]; err != nil {
		return db.Question{}, err
	}
	for _, other := range q.st.questions {
		if other.ID != arg.ID && other.CategoryID == question.CategoryID && other.Text == arg.Text {
			return db.Question{}, uniqueViolation("questions_category_id_text_key")
		}
	}
	question.Text = arg.Text
	question.Options = append(json.RawMessage(nil), arg.Options...)
	question.UpdatedAt = time.Now()
	q.st.questions[question.ID] = question
	return question, nil
}

func copyNullRaw(p pqtype.NullRawMessage) pqtype.NullRawMessage {
	if !p.Valid {
		return pqtype.NullRawMessage{}
	}
	return pqtype.NullRawMessage{RawMessage: append(json.RawMessage(nil), p.RawMessage...), Valid: true}
}

var (
	_ db.Store     = (*MemoryStore)(nil)
	_ db.TxQuerier = (*memTx)(nil)
)
