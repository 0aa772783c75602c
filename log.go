package optargs

import (
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("optargs")
