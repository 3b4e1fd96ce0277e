package service

import (
	"career_advisor_backend/internal/model"
	"career_advisor_backend/internal/repository"
	"career_advisor_backend/internal/util"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// AccountService 账号仅用于预置与校验，不签发会话
type AccountService struct {
	Repo *repository.AccountRepository
}

func NewAccountService(repo *repository.AccountRepository) *AccountService {
	return &AccountService{Repo: repo}
}

func (s *AccountService) Register(username, password string) (*model.Account, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password are required")
	}

	if _, err := s.Repo.FindByUsername(username); err == nil {
		return nil, util.ErrUsernameTaken
	} else if !errors.Is(err, util.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &model.Account{
		Username: username,
		Password: string(hashedPassword),
	}
	if err := s.Repo.Create(account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *AccountService) Authenticate(username, password string) (*model.Account, error) {
	account, err := s.Repo.FindByUsername(username)
	if err != nil {
		return nil, util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		return nil, util.ErrInvalidCredentials
	}
	return account, nil
}

// EnsureAccount 账号已存在时直接返回，用于启动时预置默认账号
func (s *AccountService) EnsureAccount(username, password string) (*model.Account, error) {
	if account, err := s.Repo.FindByUsername(username); err == nil {
		return account, nil
	}

	account, err := s.Register(username, password)
	if errors.Is(err, util.ErrUsernameTaken) {
		return s.Repo.FindByUsername(username)
	}
	return account, err
}
