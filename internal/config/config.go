package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

const (
	ImageHostCloudinary = "cloudinary"
	ImageHostS3         = "s3"
)

// Config is read from an optional YAML file named by CONFIG_FILE and then
// from the environment. Environment variables win over the file.
type Config struct {
	Port            string `yaml:"PORT"`
	SupabaseURL     string `yaml:"SUPABASE_URL"`
	SupabaseAnonKey string `yaml:"SUPABASE_URL_ANON_KEY"`
	SupabaseSecret  string `yaml:"SUPABASE_JWT_SECRET"`
	MongoDBURI      string `yaml:"MONGODB_URI"`
	MongoDBPassword string `yaml:"MONGODB_PASSWORD"`
	MongoDBDatabase string `yaml:"MONGODB_DATABASE"`

	ImageHost           string `yaml:"IMAGE_HOST"`
	CloudinaryCloudName string `yaml:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `yaml:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `yaml:"CLOUDINARY_API_SECRET"`
	AWSS3Bucket         string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region         string `yaml:"AWS_S3_REGION"`
	AWSAccessKey        string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey        string `yaml:"AWS_SECRET_KEY"`

	GeocoderURL       string `yaml:"GEOCODER_URL"`
	GeocoderUserAgent string `yaml:"GEOCODER_USER_AGENT"`

	AllowedOrigins []string `yaml:"ALLOWED_ORIGINS"`
	Environment    string   `yaml:"ENVIRONMENT"`
	LogLevel       string   `yaml:"LOG_LEVEL"`
}

func defaults() *Config {
	return &Config{
		Port:              "8080",
		MongoDBDatabase:   "wastenot",
		ImageHost:         ImageHostCloudinary,
		GeocoderURL:       "https://nominatim.openstreetmap.org",
		GeocoderUserAgent: "wastenot-api",
		AllowedOrigins:    []string{"http://localhost:3000"},
		Environment:       "development",
		LogLevel:          "info",
	}
}

func LoadConfig() (*Config, error) {
	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	cfg.loadEnv()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %v", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %v", err)
	}
	return nil
}

func (c *Config) loadEnv() {
	setFromEnv(&c.Port, "PORT")
	setFromEnv(&c.SupabaseURL, "SUPABASE_URL")
	setFromEnv(&c.SupabaseAnonKey, "SUPABASE_URL_ANON_KEY")
	setFromEnv(&c.SupabaseSecret, "SUPABASE_JWT_SECRET")
	setFromEnv(&c.MongoDBURI, "MONGODB_URI")
	setFromEnv(&c.MongoDBPassword, "MONGODB_PASSWORD")
	setFromEnv(&c.MongoDBDatabase, "MONGODB_DATABASE")
	setFromEnv(&c.ImageHost, "IMAGE_HOST")
	setFromEnv(&c.CloudinaryCloudName, "CLOUDINARY_CLOUD_NAME")
	setFromEnv(&c.CloudinaryAPIKey, "CLOUDINARY_API_KEY")
	setFromEnv(&c.CloudinaryAPISecret, "CLOUDINARY_API_SECRET")
	setFromEnv(&c.AWSS3Bucket, "AWS_S3_BUCKET")
	setFromEnv(&c.AWSS3Region, "AWS_S3_REGION")
	setFromEnv(&c.AWSAccessKey, "AWS_ACCESS_KEY")
	setFromEnv(&c.AWSSecretKey, "AWS_SECRET_KEY")
	setFromEnv(&c.GeocoderURL, "GEOCODER_URL")
	setFromEnv(&c.GeocoderUserAgent, "GEOCODER_USER_AGENT")
	setFromEnv(&c.Environment, "ENVIRONMENT")
	setFromEnv(&c.LogLevel, "LOG_LEVEL")

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		c.AllowedOrigins = c.AllowedOrigins[:0]
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				c.AllowedOrigins = append(c.AllowedOrigins, o)
			}
		}
	}
	c.ImageHost = strings.ToLower(strings.TrimSpace(c.ImageHost))
}

func (c *Config) validate() error {
	if c.SupabaseURL == "" {
		return fmt.Errorf("SUPABASE_URL is required")
	}
	if c.SupabaseAnonKey == "" {
		return fmt.Errorf("SUPABASE_URL_ANON_KEY is required")
	}
	if c.MongoDBURI == "" {
		return fmt.Errorf("MONGODB_URI is required")
	}
	if strings.Contains(c.MongoDBURI, "<password>") && c.MongoDBPassword == "" {
		return fmt.Errorf("MONGODB_PASSWORD is required")
	}

	switch c.ImageHost {
	case ImageHostCloudinary:
		if c.CloudinaryCloudName == "" || c.CloudinaryAPIKey == "" || c.CloudinaryAPISecret == "" {
			return fmt.Errorf("CLOUDINARY_CLOUD_NAME, CLOUDINARY_API_KEY and CLOUDINARY_API_SECRET are required")
		}
	case ImageHostS3:
		if c.AWSS3Bucket == "" || c.AWSS3Region == "" {
			return fmt.Errorf("AWS_S3_BUCKET and AWS_S3_REGION are required")
		}
	default:
		return fmt.Errorf("unknown IMAGE_HOST %q", c.ImageHost)
	}
	return nil
}

func setFromEnv(dst *string, key string) {
	if value := os.Getenv(key); value != "" {
		*dst = value
	}
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
