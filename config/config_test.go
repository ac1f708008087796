package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Server:  ServerConfig{Port: 8050},
		Storage: StorageConfig{DataDir: "data"},
		Auth: AuthConfig{
			JWTSecret:      "test-secret-key-for-unit-testing-2026",
			AccessTokenTTL: time.Hour,
		},
	}
}

func TestValidate_OK(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("期望校验通过，实际: %v", err)
	}
}

func TestValidate_Failures(t *testing.T) {
	cases := map[string]func(c *Config){
		"空密钥":    func(c *Config) { c.Auth.JWTSecret = "" },
		"短密钥":    func(c *Config) { c.Auth.JWTSecret = "short" },
		"端口越界":   func(c *Config) { c.Server.Port = 70000 },
		"空数据目录":  func(c *Config) { c.Storage.DataDir = "  " },
		"TTL 为 0": func(c *Config) { c.Auth.AccessTokenTTL = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := validConfig()
			mutate(c)
			if err := c.Validate(); err == nil {
				t.Error("期望校验失败")
			}
		})
	}
}

func TestLoad_FileAndDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "auth:\n  jwt_secret: file-secret-0123456789\nstorage:\n  data_dir: /srv/campus\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("写入配置文件失败: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load 应成功: %v", err)
	}
	if cfg.Storage.DataDir != "/srv/campus" {
		t.Errorf("期望 data_dir=/srv/campus，实际=%s", cfg.Storage.DataDir)
	}
	if cfg.Server.Port != 8050 {
		t.Errorf("期望默认端口 8050，实际=%d", cfg.Server.Port)
	}
	if cfg.Auth.AccessTokenTTL != 2*time.Hour {
		t.Errorf("期望默认 TTL=2h，实际=%s", cfg.Auth.AccessTokenTTL)
	}
	if !cfg.Feature.NotifyLocationChanges {
		t.Error("期望默认开启地点变更通知")
	}
	if cfg.Feature.NotificationUserID != 1 {
		t.Errorf("期望默认通知接收人=1，实际=%d", cfg.Feature.NotificationUserID)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "auth:\n  jwt_secret: file-secret-0123456789\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("写入配置文件失败: %v", err)
	}
	t.Setenv("CAMPUS_SERVER_PORT", "9100")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load 应成功: %v", err)
	}
	if cfg.Server.Port != 9100 {
		t.Errorf("期望环境变量覆盖端口=9100，实际=%d", cfg.Server.Port)
	}
}

func TestLoad_EnvOnlySecret(t *testing.T) {
	// 切到空目录，确保不会读到任何 config.yaml
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	t.Setenv("CAMPUS_AUTH_JWT_SECRET", "env-secret-0123456789abcdef")
	t.Setenv("CAMPUS_STORAGE_DATA_DIR", "/srv/campus")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("无配置文件时应能仅依赖环境变量加载: %v", err)
	}
	if cfg.Auth.JWTSecret != "env-secret-0123456789abcdef" {
		t.Errorf("期望读取环境变量中的 jwt_secret，实际=%q", cfg.Auth.JWTSecret)
	}
	if cfg.Storage.DataDir != "/srv/campus" {
		t.Errorf("期望 data_dir=/srv/campus，实际=%q", cfg.Storage.DataDir)
	}
}
