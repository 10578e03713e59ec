package logconfig

import (
	"fmt"
	"io"
	"sort"

	"github.com/0990/gotld/pkg/util"
	"github.com/natefinch/lumberjack"
	"github.com/sirupsen/logrus"
)

var SortKeys = []string{logrus.FieldKeyTime, logrus.FieldKeyLevel, "host", logrus.FieldKeyMsg, "fqdn", "rtt"}

var SortingFunc = func(keys []string) {
	sort.SliceStable(keys, func(i, j int) bool {
		// keys listed in SortKeys come first, in SortKeys order;
		// the rest compare as plain strings
		iIndex := util.IndexOfString(SortKeys, keys[i])
		jIndex := util.IndexOfString(SortKeys, keys[j])
		if iIndex != -1 && jIndex != -1 {
			return iIndex < jIndex
		}

		if iIndex != -1 {
			return true
		}

		if jIndex != -1 {
			return false
		}

		return keys[i] < keys[j]
	})
}

func InitLogrus(name string, maxMB int, level logrus.Level) {

	formatter := &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: false,
		TimestampFormat:  "2006-01-02 15:04:05",
		SortingFunc:      SortingFunc,
	}

	logrus.SetFormatter(formatter)

	logrus.SetLevel(level)
	logrus.AddHook(NewDefaultHook(name, maxMB))
}

type DefaultHook struct {
	writer io.Writer
	fmt    logrus.Formatter
}

func NewDefaultHook(name string, maxSize int) *DefaultHook {
	formatter := &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: false,
		TimestampFormat:  "2006-01-02 15:04:05",
		SortingFunc:      SortingFunc,
	}

	writer := &lumberjack.Logger{
		Filename:   fmt.Sprintf("%s.log", name),
		MaxSize:    maxSize,
		MaxAge:     7,
		MaxBackups: 7,
		LocalTime:  true,
		Compress:   false,
	}

	return &DefaultHook{
		writer: writer,
		fmt:    formatter,
	}
}

func (p *DefaultHook) Fire(entry *logrus.Entry) error {
	data, err := p.fmt.Format(entry)
	if err != nil {
		return err
	}
	_, err = p.writer.Write(data)
	return err
}

func (p *DefaultHook) Levels() []logrus.Level {
	return logrus.AllLevels
}
