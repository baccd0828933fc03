package binding

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("jeemodel/binding", "Deployment Descriptor Binding")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
