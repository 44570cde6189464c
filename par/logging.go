package par

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NewLevelSplitLogger returns a *logrus.Logger that writes Warn-and-above
// entries to errOut and everything else to out. logrus.New() alone
// cannot do this: a Logger has a single Out, and by default that single
// destination is os.Stderr for every level (the teacher corpus's own
// logger package has to override this with an explicit
// SetOutput(os.Stdout) call after log.New() just to get progress output
// onto stdout at all, and even then it still sends every level to that
// one stream). spec.md's "progress to standard output when verbose;
// errors... to standard error" needs two destinations at once, so this
// discards the logger's own Out and routes every entry through a hook
// that formats and writes it itself.
func NewLevelSplitLogger(out, errOut io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.AddHook(&levelSplitHook{out: out, errOut: errOut})
	return l
}

type levelSplitHook struct {
	out, errOut io.Writer
}

func (h *levelSplitHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *levelSplitHook) Fire(entry *logrus.Entry) error {
	line, err := entry.Logger.Formatter.Format(entry)
	if err != nil {
		return err
	}
	dst := h.out
	if entry.Level <= logrus.WarnLevel {
		dst = h.errOut
	}
	_, err = dst.Write(line)
	return err
}
