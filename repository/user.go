package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"

	"go-splendor/entities"
)

var Db *sql.DB

var ErrUserNotFound = errors.New("用户不存在")

func InitMySQL() {
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		dsn = "root:root@tcp(localhost:3306)/splendor?parseTime=true"
	}
	var err error
	Db, err = sql.Open("mysql", dsn)
	if err != nil {
		zap.S().Fatalf("MySQL 打开失败: %v", err)
	}
	if err := Db.Ping(); err != nil {
		zap.S().Fatalf("MySQL 连接失败: %v", err)
	}

	_, err = Db.Exec(`CREATE TABLE IF NOT EXISTS users (
		id         VARCHAR(36)  PRIMARY KEY,
		login      VARCHAR(64)  NOT NULL UNIQUE,
		name       VARCHAR(64)  NOT NULL DEFAULT '',
		avatar_url VARCHAR(256) NOT NULL DEFAULT ''
	)`)
	if err != nil {
		zap.S().Fatalf("users 表初始化失败: %v", err)
	}
	zap.S().Info("✅ MySQL 连接成功")
}

// UpsertUser 按 login 去重写入用户
func UpsertUser(user entities.User) error {
	_, err := Db.Exec(
		`INSERT INTO users (id, login, name, avatar_url) VALUES (?, ?, ?, ?)
		 ON DUPLICATE KEY UPDATE name = VALUES(name), avatar_url = VALUES(avatar_url)`,
		user.ID, user.Login, user.Name, user.AvatarURL,
	)
	if err != nil {
		return fmt.Errorf("保存用户失败: %w", err)
	}
	return nil
}

func GetUserByID(id string) (*entities.User, error) {
	return scanUser(Db.QueryRow(
		"SELECT id, login, name, avatar_url FROM users WHERE id = ?", id))
}

func GetUserByLogin(login string) (*entities.User, error) {
	return scanUser(Db.QueryRow(
		"SELECT id, login, name, avatar_url FROM users WHERE login = ?", login))
}

func scanUser(row *sql.Row) (*entities.User, error) {
	var user entities.User
	err := row.Scan(&user.ID, &user.Login, &user.Name, &user.AvatarURL)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("读取用户失败: %w", err)
	}
	return &user, nil
}
