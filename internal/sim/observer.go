package sim

import (
	"fmt"

	"github.com/san-kum/predprey/internal/dynamo"
	"github.com/sirupsen/logrus"
)

// LogObserver traces every Every-th sample at debug level.
type LogObserver struct {
	Every  int
	Labels []string
}

func (o *LogObserver) OnStep(step int, x dynamo.State, t float64) {
	if o.Every <= 0 || step%o.Every != 0 {
		return
	}
	if !logrus.IsLevelEnabled(logrus.DebugLevel) {
		return
	}

	fields := logrus.Fields{"step": step, "t": t}
	for i, v := range x {
		key := fmt.Sprintf("x%d", i)
		if i < len(o.Labels) && o.Labels[i] != "" {
			key = o.Labels[i]
		}
		fields[key] = v
	}
	logrus.WithFields(fields).Debug("sample")
}
