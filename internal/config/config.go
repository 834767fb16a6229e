package config

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/joho/godotenv"
)

// SSMParameterGetter Parameter Storeからパラメータを取得するポート
type SSMParameterGetter interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// Config アプリケーション設定構造体
type Config struct {
	// LINE API設定（未設定ならLINE通知は無効）
	LineChannelAccessToken string
	LineUserID             string

	// Google Calendar設定（未設定なら取り込みは無効）
	GoogleCredentials string
	CalendarID        string

	// 通知設定
	BeepEnabled   bool
	NotifyTimeout time.Duration

	// その他設定
	LogLevel string

	// AWS関連（CONFIG_SOURCE=ssm の場合のみ使用）
	ssmClient SSMParameterGetter
}

// Load 環境に応じて設定を読み込み
//
// envFiles 未指定時はカレントディレクトリの .env を読む。
func Load(ctx context.Context, envFiles ...string) (*Config, error) {
	// .envファイルを読み込み（存在する場合のみ）
	if err := godotenv.Load(envFiles...); err != nil && len(envFiles) > 0 {
		return nil, fmt.Errorf(".envファイルの読み込みに失敗しました: %v", err)
	}

	cfg, err := loadLocalConfig()
	if err != nil {
		return nil, err
	}

	if strings.EqualFold(getEnvOrDefault("CONFIG_SOURCE", "env"), "ssm") {
		awsConfig, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("AWS設定の読み込みに失敗しました: %v", err)
		}
		cfg.ssmClient = ssm.NewFromConfig(awsConfig)

		// Parameter Storeから機密情報を取得
		if err := cfg.loadFromParameterStore(ctx); err != nil {
			return nil, fmt.Errorf("Parameter Storeからの設定読み込みに失敗しました: %v", err)
		}
	}

	return cfg, nil
}

// loadLocalConfig 環境変数から設定を読み込み
func loadLocalConfig() (*Config, error) {
	beep, err := strconv.ParseBool(getEnvOrDefault("BEEP_ENABLED", "true"))
	if err != nil {
		return nil, fmt.Errorf("BEEP_ENABLEDの値が不正です: %v", err)
	}

	timeoutSeconds, err := strconv.Atoi(getEnvOrDefault("NOTIFY_TIMEOUT_SECONDS", "30"))
	if err != nil || timeoutSeconds <= 0 {
		return nil, fmt.Errorf("NOTIFY_TIMEOUT_SECONDSには正の整数を指定してください: %q", os.Getenv("NOTIFY_TIMEOUT_SECONDS"))
	}

	cfg := &Config{
		LineChannelAccessToken: getEnvOrDefault("LINE_CHANNEL_ACCESS_TOKEN", ""),
		LineUserID:             getEnvOrDefault("LINE_USER_ID", ""),
		GoogleCredentials:      getEnvOrDefault("GOOGLE_CREDENTIALS", ""),
		CalendarID:             getEnvOrDefault("CALENDAR_ID", "primary"),
		BeepEnabled:            beep,
		NotifyTimeout:          time.Duration(timeoutSeconds) * time.Second,
		LogLevel:               getEnvOrDefault("LOG_LEVEL", "INFO"),
	}

	// LINE設定は片方だけでは使えない
	if (cfg.LineChannelAccessToken == "") != (cfg.LineUserID == "") {
		return nil, fmt.Errorf("LINE_CHANNEL_ACCESS_TOKENとLINE_USER_IDは両方設定してください")
	}

	return cfg, nil
}

// loadFromParameterStore Parameter Storeから機密情報を読み込み
func (c *Config) loadFromParameterStore(ctx context.Context) error {
	// Google認証情報を取得
	googleCredsParam := getEnvOrDefault("SSM_GOOGLE_CREDS_PARAM", "/academic-calendar-reminder/google-creds")
	googleCreds, err := c.getParameter(ctx, googleCredsParam, true)
	if err != nil {
		return fmt.Errorf("Google認証情報の取得に失敗しました: %v", err)
	}
	c.GoogleCredentials = googleCreds

	// LINE Channel Access Tokenを取得
	lineTokenParam := getEnvOrDefault("SSM_LINE_TOKEN_PARAM", "/academic-calendar-reminder/line-channel-access-token")
	lineToken, err := c.getParameter(ctx, lineTokenParam, true)
	if err != nil {
		return fmt.Errorf("LINE Channel Access Tokenの取得に失敗しました: %v", err)
	}
	c.LineChannelAccessToken = lineToken

	// LINE User IDを取得
	lineUserParam := getEnvOrDefault("SSM_LINE_USER_ID_PARAM", "/academic-calendar-reminder/line-user-id")
	lineUser, err := c.getParameter(ctx, lineUserParam, true)
	if err != nil {
		return fmt.Errorf("LINE User IDの取得に失敗しました: %v", err)
	}
	c.LineUserID = lineUser

	return nil
}

// getParameter Parameter Storeから指定されたパラメータを取得
func (c *Config) getParameter(ctx context.Context, paramName string, withDecryption bool) (string, error) {
	input := &ssm.GetParameterInput{
		Name:           aws.String(paramName),
		WithDecryption: aws.Bool(withDecryption),
	}

	result, err := c.ssmClient.GetParameter(ctx, input)
	if err != nil {
		return "", fmt.Errorf("パラメータ %s の取得に失敗しました: %v", paramName, err)
	}

	if result.Parameter == nil || result.Parameter.Value == nil || *result.Parameter.Value == "" {
		return "", fmt.Errorf("パラメータ %s が空の値です", paramName)
	}

	return *result.Parameter.Value, nil
}

// LINEEnabled LINE通知が使えるかどうか
func (c *Config) LINEEnabled() bool {
	return c.LineChannelAccessToken != "" && c.LineUserID != ""
}

// GoogleCalendarEnabled Google Calendarからの取り込みが使えるかどうか
func (c *Config) GoogleCalendarEnabled() bool {
	return c.GoogleCredentials != ""
}

// GetGoogleCredentialsJSON Google認証情報をJSONとして検証して返す
func (c *Config) GetGoogleCredentialsJSON() ([]byte, error) {
	var credentials map[string]interface{}
	if err := json.Unmarshal([]byte(c.GoogleCredentials), &credentials); err != nil {
		return nil, fmt.Errorf("Google認証情報のJSON解析に失敗しました: %v", err)
	}
	return []byte(c.GoogleCredentials), nil
}

// getEnvOrDefault 環境変数を取得し、存在しない場合はデフォルト値を返す
func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
