package model

import "strings"

// 所有业务主键均为定长 char(10)，由数据库右侧补空格。
// 读出后统一用 TrimID 去掉补位空格，再进入 DTO。
const IDLength = 10

// TrimID 去掉定长主键右侧的补位空格
func TrimID(id string) string {
	return strings.TrimRight(id, " ")
}
