package app

import (
	"fmt"

	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("jeectl", "descriptor command line tool")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)

// SetLogLevel sets the log level for the tool and the
// descriptor packages.
func SetLogLevel(level string) error {
	l, err := logging.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q", level)
	}
	lctx := logging.DefaultContext()
	lctx.AddRule(logging.NewConditionRule(l, logging.NewRealmPrefix("jeectl")))
	lctx.AddRule(logging.NewConditionRule(l, logging.NewRealmPrefix("jeemodel")))
	return nil
}
