package model

// 外键与可选文本统一用指针表示，nil 即 JSON null

func UintPtr(v uint) *uint {
	return &v
}

func StringPtr(v string) *string {
	return &v
}

func cloneUint(p *uint) *uint {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
