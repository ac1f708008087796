package model

// User 用户，对应 users.csv（外部维护，本系统只读）
type User struct {
	Username string `csv:"username"  json:"username"`
	Password string `csv:"password"  json:"-"` // bcrypt 哈希或历史明文
	FullName string `csv:"full_name" json:"full_name"`
	Email    string `csv:"email"     json:"email"`
	Role     string `csv:"role"      json:"role"`
	Status   string `csv:"status"    json:"status"`
}

// RecordID users.csv 没有数值主键，恒为 0
func (User) RecordID() int { return 0 }

// IsActive 账号是否可登录
func (u User) IsActive() bool { return u.Status == StatusActive }

// UsersFile 数据文件名
const UsersFile = "users.csv"

// ── 角色与状态 ──

const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
	RoleStaff   = "staff"
	RoleVisitor = "visitor"

	StatusActive   = "active"
	StatusInactive = "inactive"
)
