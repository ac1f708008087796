package dto

// NavItem 侧边栏菜单项
// 非管理员仍能看到管理菜单，但 Enabled=false
type NavItem struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Path    string `json:"path"`
	Enabled bool   `json:"enabled"`
	// ReadOnly 页面可访问但不可操作（非管理员查看通知）
	ReadOnly bool `json:"read_only,omitempty"`
}

// NavigationResponse 当前用户的导航菜单
type NavigationResponse struct {
	Role  string    `json:"role"`
	Items []NavItem `json:"items"`
}

// PageAccessQuery 页面访问检查参数
type PageAccessQuery struct {
	Path string `form:"path" binding:"required"`
}

// PageAccessResponse 页面访问检查结果
type PageAccessResponse struct {
	Path    string `json:"path"`
	Allowed bool   `json:"allowed"`
}
