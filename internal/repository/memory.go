package repository

import (
	"career_advisor_backend/internal/model"
	"sync"
	"time"
)

// Clock 记录时间来源，测试中可替换
type Clock func() time.Time

// record 表中的行需要能深拷贝，避免调用方修改内部状态
type record[T any] interface {
	Clone() T
}

// table 单一实体类型的内存表：自增 ID 从 1 开始，按插入顺序保存。
// ID 分配与写入在同一把写锁内完成，保证并发写入不会产生重复 ID。
type table[T record[T]] struct {
	mu     sync.RWMutex
	lastID uint
	rows   []T
	index  map[uint]int
	clock  Clock
}

func newTable[T record[T]](clock Clock) *table[T] {
	return &table[T]{
		index: make(map[uint]int),
		clock: clock,
	}
}

// insert 分配下一个 ID 和创建时间，由 build 组装记录
func (t *table[T]) insert(build func(id uint, now time.Time) (T, error)) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	row, err := build(t.lastID+1, t.clock())
	if err != nil {
		var zero T
		return zero, err
	}

	t.lastID++
	t.index[t.lastID] = len(t.rows)
	t.rows = append(t.rows, row)
	return row.Clone(), nil
}

func (t *table[T]) get(id uint) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	i, ok := t.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return t.rows[i].Clone(), true
}

func (t *table[T]) find(match func(T) bool) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, row := range t.rows {
		if match(row) {
			return row.Clone(), true
		}
	}
	var zero T
	return zero, false
}

// filter 返回所有匹配行，按插入顺序；无匹配时返回空切片而非 nil
func (t *table[T]) filter(match func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0)
	for _, row := range t.rows {
		if match(row) {
			out = append(out, row.Clone())
		}
	}
	return out
}

func (t *table[T]) count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

// MemoryDB 进程内的全部记录，生命周期等于进程生命周期，不做持久化。
// 每种实体一张表，各自持有锁与 ID 计数器。
type MemoryDB struct {
	clock         Clock
	accounts      *table[model.Account]
	careerGoals   *table[model.CareerGoal]
	learningPaths *table[model.LearningPath]
	advice        *table[model.AiAdvice]
}

type Option func(*MemoryDB)

func WithClock(clock Clock) Option {
	return func(db *MemoryDB) {
		db.clock = clock
	}
}

func NewMemoryDB(opts ...Option) *MemoryDB {
	db := &MemoryDB{clock: time.Now}
	for _, opt := range opts {
		opt(db)
	}
	db.accounts = newTable[model.Account](db.clock)
	db.careerGoals = newTable[model.CareerGoal](db.clock)
	db.learningPaths = newTable[model.LearningPath](db.clock)
	db.advice = newTable[model.AiAdvice](db.clock)
	return db
}

func sameID(p *uint, id uint) bool {
	return p != nil && *p == id
}

// normalizeID 将 0 视为未设置，统一为 nil
func normalizeID(p *uint) *uint {
	if p == nil || *p == 0 {
		return nil
	}
	v := *p
	return &v
}
