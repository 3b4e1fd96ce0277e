package repository

import (
	"career_advisor_backend/internal/model"
	"career_advisor_backend/internal/util"
	"time"
)

type AccountRepository struct {
	accounts *table[model.Account]
}

func NewAccountRepository(db *MemoryDB) *AccountRepository {
	return &AccountRepository{accounts: db.accounts}
}

// Create 用户名唯一，重复时返回 util.ErrUsernameTaken
func (r *AccountRepository) Create(account *model.Account) error {
	created, err := r.accounts.insert(func(id uint, _ time.Time) (model.Account, error) {
		for _, existing := range r.accounts.rows {
			if existing.Username == account.Username {
				return model.Account{}, util.ErrUsernameTaken
			}
		}
		row := *account
		row.ID = id
		return row, nil
	})
	if err != nil {
		return err
	}
	*account = created
	return nil
}

func (r *AccountRepository) FindByID(id uint) (*model.Account, error) {
	account, ok := r.accounts.get(id)
	if !ok {
		return nil, util.ErrRecordNotFound
	}
	return &account, nil
}

func (r *AccountRepository) FindByUsername(username string) (*model.Account, error) {
	account, ok := r.accounts.find(func(a model.Account) bool {
		return a.Username == username
	})
	if !ok {
		return nil, util.ErrRecordNotFound
	}
	return &account, nil
}
