package configs

// Config holds all configuration for the application.
type Config struct {
	Log         LogConfig         `mapstructure:"log" validate:"required"`
	Server      ServerConfig      `mapstructure:"server" validate:"required"`
	Data        DataConfig        `mapstructure:"data" validate:"required"`
	Aggregation AggregationConfig `mapstructure:"aggregation" validate:"required"`
	Influx      InfluxConfig      `mapstructure:"influx" validate:"required"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// ServerConfig holds the observability HTTP server configuration.
type ServerConfig struct {
	Port int `mapstructure:"port" validate:"required,min=1,max=65535"`
}

// DataConfig holds the input file locations.
type DataConfig struct {
	ProductCSV       string `mapstructure:"product_csv" validate:"required"`
	ContentEventDir  string `mapstructure:"content_event_dir" validate:"required"`
	PurchaseEventDir string `mapstructure:"purchase_event_dir" validate:"required"`
}

// AggregationConfig holds the aggregation knobs of a run.
type AggregationConfig struct {
	TimeStepDays      int    `mapstructure:"time_step_days" validate:"required,min=1"`
	Version           string `mapstructure:"version" validate:"required"`
	ArticleCodeDigits int    `mapstructure:"article_code_digits" validate:"required,min=1,max=14"`
}

// InfluxConfig holds the time-series sink configuration.
type InfluxConfig struct {
	URL       string `mapstructure:"url" validate:"required,url"`
	Token     string `mapstructure:"token" validate:"required"`
	Org       string `mapstructure:"org" validate:"required"`
	Bucket    string `mapstructure:"bucket" validate:"required"`
	BatchSize int    `mapstructure:"batch_size" validate:"required,min=1"`
}
