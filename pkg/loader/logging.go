package loader

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("jeemodel/loader", "Module Descriptor Loader")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
