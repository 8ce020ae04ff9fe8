package parameter

import (
	"os"
	"reflect"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/lixenwraith/hexfall/physics"
)

// EnvPrefix prefixes every environment override, e.g. HEXFALL_GRAVITY
const EnvPrefix = "HEXFALL_"

// Toggle modes for the confetti palette
const (
	ToggleModeEdge      = "edge"
	ToggleModeThreshold = "threshold"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config holds every tunable of a simulation run
// TOML keys and env suffixes are the snake_case tag names
type Config struct {
	Width     float64 `toml:"width"`
	Height    float64 `toml:"height"`
	HexRadius float64 `toml:"hex_radius"`

	BaseRotation          float64 `toml:"base_rotation"`
	BoostedRotation       float64 `toml:"boosted_rotation"`
	RotationSpringFreq    float64 `toml:"rotation_spring_freq"`
	RotationSpringDamping float64 `toml:"rotation_spring_damping"`

	BallRadius      float64 `toml:"ball_radius"`
	BallSpawnOffset float64 `toml:"ball_spawn_offset"`
	ParticleRadius  float64 `toml:"particle_radius"`

	Gravity           float64 `toml:"gravity"`
	Friction          float64 `toml:"friction"`
	Restitution       float64 `toml:"restitution"`
	Thrust            float64 `toml:"thrust"`
	MaxSpeed          float64 `toml:"max_speed"`
	Wind              float64 `toml:"wind"`
	WindGust          float64 `toml:"wind_gust"`
	WindGustFrequency float64 `toml:"wind_gust_frequency"`
	WaterLevel        float64 `toml:"water_level"`
	WaterDrag         float64 `toml:"water_drag"`

	SpawnRate         int     `toml:"spawn_rate"`
	SpawnSpeed        float64 `toml:"spawn_speed"`
	ParticleCapacity  int     `toml:"particle_capacity"`
	ParticleTTL       float64 `toml:"particle_ttl"`
	Workers           int     `toml:"workers"`
	ParallelThreshold int     `toml:"parallel_threshold"`

	Strategy             string  `toml:"strategy"`
	ToggleMode           string  `toml:"toggle_mode"`
	TogglePressThreshold int     `toml:"toggle_press_threshold"`
	RainbowHueSpeed      float64 `toml:"rainbow_hue_speed"`

	MaxStepDelta float64 `toml:"max_step_delta"`
	Seed         int64   `toml:"seed"`

	FPS          int     `toml:"fps"`
	HoldWindowMs int     `toml:"hold_window_ms"`
	Audio        bool    `toml:"audio"`
	Volume       float64 `toml:"volume"`
}

// Default returns the compiled-in configuration
func Default() *Config {
	return &Config{
		Width:     CanvasWidth,
		Height:    CanvasHeight,
		HexRadius: HexRadius,

		BaseRotation:          BaseRotation,
		BoostedRotation:       BoostedRotation,
		RotationSpringFreq:    RotationSpringFreq,
		RotationSpringDamping: RotationSpringDamping,

		BallRadius:      BallRadius,
		BallSpawnOffset: BallSpawnOffset,
		ParticleRadius:  ParticleRadius,

		Gravity:           Gravity,
		Friction:          Friction,
		Restitution:       Restitution,
		Thrust:            Thrust,
		MaxSpeed:          MaxSpeed,
		Wind:              Wind,
		WindGust:          WindGust,
		WindGustFrequency: WindGustFrequency,
		WaterLevel:        CanvasHeight/2 + WaterLevelOffset,
		WaterDrag:         WaterDrag,

		SpawnRate:         SpawnRate,
		SpawnSpeed:        SpawnSpeed,
		ParticleCapacity:  ParticleCapacity,
		ParticleTTL:       ParticleTTL,
		Workers:           runtime.NumCPU(),
		ParallelThreshold: ParallelThreshold,

		Strategy:             physics.StrategyNearest.String(),
		ToggleMode:           ToggleModeEdge,
		TogglePressThreshold: TogglePressThreshold,
		RainbowHueSpeed:      RainbowHueSpeed,

		MaxStepDelta: MaxStepDelta,

		FPS:          DefaultFPS,
		HoldWindowMs: int(HoldWindow / time.Millisecond),
		Audio:        true,
		Volume:       AudioVolume,
	}
}

// HoldWindow returns the key hold window as a duration
func (c *Config) HoldWindow() time.Duration {
	return time.Duration(c.HoldWindowMs) * time.Millisecond
}

// Load layers defaults, the TOML file at path, the dotenv file at envFile and
// HEXFALL_* environment variables, then validates the result
// Empty path skips the TOML layer; a missing envFile is ignored
func Load(path, envFile string) (*Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, errors.Wrapf(err, "decode config %s", path)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, errors.Wrapf(ErrInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
		}
	}

	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			// Existing process variables win over the file
			if err := godotenv.Load(envFile); err != nil {
				return nil, errors.Wrapf(err, "load env file %s", envFile)
			}
		} else if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "stat env file %s", envFile)
		}
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from HEXFALL_<TOML_KEY> variables
func ApplyEnv(cfg *Config) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		key := t.Field(i).Tag.Get("toml")
		if key == "" {
			continue
		}
		name := EnvPrefix + strings.ToUpper(key)
		raw, ok := os.LookupEnv(name)
		if !ok || raw == "" {
			continue
		}
		raw = strings.TrimSpace(raw)

		field := v.Field(i)
		switch field.Kind() {
		case reflect.Float64:
			f, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return errors.Wrapf(err, "parse %s", name)
			}
			field.SetFloat(f)
		case reflect.Int, reflect.Int64:
			n, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return errors.Wrapf(err, "parse %s", name)
			}
			field.SetInt(n)
		case reflect.Bool:
			b, err := strconv.ParseBool(raw)
			if err != nil {
				return errors.Wrapf(err, "parse %s", name)
			}
			field.SetBool(b)
		case reflect.String:
			field.SetString(raw)
		}
	}
	return nil
}

// Validate rejects configurations the simulation cannot run with
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "canvas %gx%g", c.Width, c.Height)
	case c.HexRadius <= 0:
		return errors.Wrapf(ErrInvalidConfig, "hex_radius %g must be positive", c.HexRadius)
	case c.BallRadius <= 0 || c.ParticleRadius <= 0:
		return errors.Wrapf(ErrInvalidConfig, "body radii %g/%g must be positive", c.BallRadius, c.ParticleRadius)
	case c.BallRadius >= c.HexRadius:
		return errors.Wrapf(ErrInvalidConfig, "ball_radius %g does not fit hex_radius %g", c.BallRadius, c.HexRadius)
	case c.Restitution <= 0 || c.Restitution > 1:
		return errors.Wrapf(ErrInvalidConfig, "restitution %g outside (0,1]", c.Restitution)
	case c.Friction <= 0 || c.Friction > 1:
		return errors.Wrapf(ErrInvalidConfig, "friction %g outside (0,1]", c.Friction)
	case c.WaterDrag <= 0 || c.WaterDrag > 1:
		return errors.Wrapf(ErrInvalidConfig, "water_drag %g outside (0,1]", c.WaterDrag)
	case c.MaxSpeed < 0:
		return errors.Wrapf(ErrInvalidConfig, "max_speed %g negative", c.MaxSpeed)
	case c.SpawnRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "spawn_rate %d negative", c.SpawnRate)
	case c.ParticleCapacity < 1:
		return errors.Wrapf(ErrInvalidConfig, "particle_capacity %d below 1", c.ParticleCapacity)
	case c.ParticleTTL < 0:
		return errors.Wrapf(ErrInvalidConfig, "particle_ttl %g negative", c.ParticleTTL)
	case c.WindGust < 0:
		return errors.Wrapf(ErrInvalidConfig, "wind_gust %g negative", c.WindGust)
	case c.RotationSpringFreq < 0 || c.RotationSpringDamping < 0:
		return errors.Wrapf(ErrInvalidConfig, "rotation spring %g/%g negative", c.RotationSpringFreq, c.RotationSpringDamping)
	case c.MaxStepDelta <= 0:
		return errors.Wrapf(ErrInvalidConfig, "max_step_delta %g must be positive", c.MaxStepDelta)
	case c.ToggleMode != ToggleModeEdge && c.ToggleMode != ToggleModeThreshold:
		return errors.Wrapf(ErrInvalidConfig, "toggle_mode %q", c.ToggleMode)
	case c.ToggleMode == ToggleModeThreshold && c.TogglePressThreshold < 1:
		return errors.Wrapf(ErrInvalidConfig, "toggle_press_threshold %d below 1", c.TogglePressThreshold)
	case c.FPS < 1:
		return errors.Wrapf(ErrInvalidConfig, "fps %d below 1", c.FPS)
	case c.Volume < 0 || c.Volume > 1:
		return errors.Wrapf(ErrInvalidConfig, "volume %g outside [0,1]", c.Volume)
	}
	if _, err := physics.ParseStrategy(c.Strategy); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}
	return nil
}
