package huffpack

import (
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("huffpack")
