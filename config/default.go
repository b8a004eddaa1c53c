package config

// DefaultConfigYAML 嵌入的默认配置，未提供外部配置文件时生效
var DefaultConfigYAML = []byte(`server:
  port: ":8080"
  mode: "debug"
  base_url: "http://localhost:8080"

database:
  host: "127.0.0.1"
  port: "3306"
  username: "click"
  password: "click"
  dbname: "click"
  charset: "utf8mb4"

jwt:
  secret: "change-me-in-production"
  expire_hours: 24

email:
  enabled: false
  host: "smtp.example.com"
  port: 465
  username: ""
  password: ""
  from: "CLiCK"

openai:
  api_key: ""
  base_url: "https://api.openai.com/v1"
  model: "gpt-4o-mini"
  temperature: 0.3
  max_tokens: 900
  timeout_seconds: 120
`)
