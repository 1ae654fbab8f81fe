package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/buger/jsonparser"
)

// settings keys
const (
	sHardware        = "hardware"
	sLoopSleep       = "loopSleep"
	sLogFile         = "logFile"
	sLogMaxSize      = "logMaxSizeMB"
	sLogMaxBackups   = "logMaxBackups"
	sLogMaxAge       = "logMaxAgeDays"
	sLogCompress     = "logCompress"
	sDebug           = "debugDump"
	sClockClk        = "clockClk"
	sClockDio        = "clockDio"
	sLeftClk         = "leftClk"
	sLeftDio         = "leftDio"
	sRightClk        = "rightClk"
	sRightDio        = "rightDio"
	sBrightness      = "brightness"
	sBuzzerPin       = "buzzerPin"
	sQuiet           = "quiet"
	sLightsSPI       = "lightsSPI"
	sLightPixels     = "lightPixels"
	sLightBrightness = "lightBrightness"
	sMatchTime       = "matchTime"
	sHitLockout      = "hitLockout"
	sButtons         = "buttons"
)

// a referee input: a GPIO line, a key in the simulator, or both
type buttonMap struct {
	pinNum int  // BCM number, 0 is not wired
	pullup bool // pressed pulls the line to ground
	key    string
}

// keep settings generic, type-convert on the fly
type configSettings struct {
	settings map[string]interface{}
}

func defaultButtons() map[string]buttonMap {
	return map[string]buttonMap{
		aToggleClock: {pullup: true, key: " "},
		aLeftUp:      {pullup: true, key: "q"},
		aLeftDown:    {pullup: true, key: "a"},
		aRightUp:     {pullup: true, key: "p"},
		aRightDown:   {pullup: true, key: "l"},
		aHitLeft:     {pullup: true, key: "z"},
		aHitRight:    {pullup: true, key: "m"},
		aOffLeft:     {pullup: true, key: "x"},
		aOffRight:    {pullup: true, key: "n"},
		aShortLeft:   {pullup: true, key: "c"},
		aShortRight:  {pullup: true, key: "k"},
		aResetLights: {pullup: true, key: "r"},
		aBrightness:  {pullup: true, key: "b"},
		aQuiet:       {pullup: true, key: "s"},
	}
}

func defaultSettings() *configSettings {
	s := make(map[string]interface{})

	// setting the type here makes the conversion "automatic" later
	s[sLoopSleep] = 500 * time.Microsecond
	s[sLogFile] = ""
	s[sLogMaxSize] = 10
	s[sLogMaxBackups] = 3
	s[sLogMaxAge] = 28
	s[sLogCompress] = true
	s[sDebug] = false
	s[sClockClk] = 2
	s[sClockDio] = 3
	s[sLeftClk] = 4
	s[sLeftDio] = 3
	s[sRightClk] = 17
	s[sRightDio] = 3
	s[sBrightness] = uint8(7)
	s[sBuzzerPin] = 18
	s[sQuiet] = false
	s[sLightsSPI] = ""
	s[sLightPixels] = 16
	s[sLightBrightness] = uint8(255 / 5)
	s[sMatchTime] = 3 * time.Minute
	s[sHitLockout] = 300 * time.Millisecond
	s[sButtons] = defaultButtons()

	hw := "sim"
	if runtime.GOARCH == "arm" || runtime.GOARCH == "arm64" {
		hw = "rpio"
	}
	s[sHardware] = hw

	return &configSettings{settings: s}
}

func (s *configSettings) settingsFromJSON(data []byte) error {
	tmp := defaultSettings()
	for k, initVal := range tmp.settings {
		// ignore missing fields
		if _, _, _, err := jsonparser.Get(data, k); err != nil {
			if err == jsonparser.KeyPathNotFoundError {
				continue
			}
			return fmt.Errorf("%s: %w", k, err)
		}

		var err error
		switch initVal.(type) {
		case uint8:
			var val int64
			val, err = jsonparser.GetInt(data, k)
			if err != nil {
				// allow "0x70" style strings
				str, err2 := jsonparser.GetString(data, k)
				if err2 == nil {
					val, err = strconv.ParseInt(str, 0, 64)
				}
			}
			if err == nil {
				if val < 0 || val > 255 {
					err = fmt.Errorf("%d does not fit in a byte", val)
				} else {
					s.settings[k] = uint8(val)
				}
			}
		case int:
			var val int64
			val, err = jsonparser.GetInt(data, k)
			if err == nil {
				s.settings[k] = int(val)
			}
		case bool:
			var bVal bool
			bVal, err = jsonparser.GetBoolean(data, k)
			if err != nil {
				// try "true" and "false"
				str, _ := jsonparser.GetString(data, k)
				switch strings.ToLower(str) {
				case "true":
					bVal, err = true, nil
				case "false":
					bVal, err = false, nil
				}
			}
			if err == nil {
				s.settings[k] = bVal
			}
		case time.Duration:
			var dur string
			dur, err = jsonparser.GetString(data, k)
			if err == nil {
				var d time.Duration
				d, err = time.ParseDuration(dur)
				if err == nil {
					s.settings[k] = d
				}
			}
		case string:
			var str string
			str, err = jsonparser.GetString(data, k)
			if err == nil {
				s.settings[k] = str
			}
		case map[string]buttonMap:
			var btns map[string]buttonMap
			btns, err = buttonsFromJSON(data, k)
			if err == nil {
				s.settings[k] = btns
			}
		default:
			err = fmt.Errorf("bad type: %T", initVal)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}
	}
	return nil
}

// buttonsFromJSON merges {"name": {"pin": n, "pullup": b, "key": "k"}}
// objects onto the default button map
func buttonsFromJSON(data []byte, key string) (map[string]buttonMap, error) {
	btns := defaultButtons()
	err := jsonparser.ObjectEach(data, func(name []byte, value []byte, dataType jsonparser.ValueType, offset int) error {
		bm, ok := btns[string(name)]
		if !ok {
			return fmt.Errorf("unknown button %q", name)
		}
		if dataType != jsonparser.Object {
			return fmt.Errorf("button %q is not an object", name)
		}
		if pin, err := jsonparser.GetInt(value, "pin"); err == nil {
			bm.pinNum = int(pin)
		}
		if pullup, err := jsonparser.GetBoolean(value, "pullup"); err == nil {
			bm.pullup = pullup
		}
		if k, err := jsonparser.GetString(value, "key"); err == nil {
			bm.key = k
		}
		btns[string(name)] = bm
		return nil
	}, key)
	return btns, err
}

func initSettings(configFile string) (*configSettings, error) {
	// defaults
	s := defaultSettings()
	if configFile == "" {
		return s, nil
	}

	data, err := ioutil.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("could not load conf file: %w", err)
	}

	log.Printf("Reading configuration from '%s'", configFile)
	if err := s.settingsFromJSON(data); err != nil {
		return nil, fmt.Errorf("bad conf file '%s': %w", configFile, err)
	}

	return s, nil
}

func (s *configSettings) GetString(key string) string {
	switch v := s.settings[key].(type) {
	case string:
		return v
	default:
		return ""
	}
}

func (s *configSettings) GetBool(key string) bool {
	switch v := s.settings[key].(type) {
	case bool:
		return v
	default:
		return false
	}
}

func (s *configSettings) GetDuration(key string) time.Duration {
	switch v := s.settings[key].(type) {
	case time.Duration:
		return v
	default:
		return -1
	}
}

func (s *configSettings) GetByte(key string) byte {
	switch v := s.settings[key].(type) {
	case byte:
		return v
	case int: // cast to byte
		return byte(v)
	default:
		return 0
	}
}

func (s *configSettings) GetInt(key string) int {
	switch v := s.settings[key].(type) {
	case int:
		return v
	case byte:
		return int(v)
	default:
		return 0
	}
}

func (s *configSettings) GetButtons() map[string]buttonMap {
	switch v := s.settings[sButtons].(type) {
	case map[string]buttonMap:
		return v
	default:
		return map[string]buttonMap{}
	}
}

func (s *configSettings) Dump(logger flogger) {
	keys := make([]string, 0, len(s.settings))
	for k := range s.settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		logger.Printf("%s : %T: %v", k, s.settings[k], s.settings[k])
	}
}
