package model

// swagger:model Account
type Account struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	// bcrypt 哈希，不对外输出
	Password string `json:"-"`
}

func (a Account) Clone() Account {
	return a
}
