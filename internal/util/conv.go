package util

import (
	"strconv"
)

// ParseID 解析正整数 ID，0、负数或非数字均视为无效
func ParseID(s string) (uint, bool) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
