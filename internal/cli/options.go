package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/altair-config/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var errInvalidHTTPMethod = errors.New("invalid --http-method")

// optionFlags binds the per-field option flags. Only flags the user actually
// passed become option values, so an absent flag never shadows the options
// file or the defaults.
type optionFlags struct {
	optionsFile string

	endpoint              string
	subscriptionsEndpoint string
	subscriptionsProtocol string
	query                 string
	variables             string
	headers               map[string]string
	preRequestScript      string
	postRequestScript     string
	namespace             string
	subscriptionsProvider string
	httpMethod            string
	preserveState         bool
	disableAccount        bool
}

func (f *optionFlags) bind(fs *pflag.FlagSet) {
	fs.StringVar(&f.optionsFile, "options", "", "Options file (YAML for .yaml/.yml, JSON otherwise)")

	fs.StringVar(&f.endpoint, "endpoint", "", "Initial GraphQL endpoint URL")
	fs.StringVar(&f.subscriptionsEndpoint, "subscriptions-endpoint", "", "Initial subscriptions endpoint URL")
	fs.StringVar(&f.subscriptionsProtocol, "subscriptions-protocol", "", "Initial subscriptions protocol")
	fs.StringVar(&f.query, "query", "", "Initial query document")
	fs.StringVar(&f.variables, "variables", "", "Initial variables (JSON text)")
	fs.StringToStringVar(&f.headers, "header", nil, "Initial header as key=value (repeatable)")
	fs.StringVar(&f.preRequestScript, "pre-request-script", "", "Initial pre-request script")
	fs.StringVar(&f.postRequestScript, "post-request-script", "", "Initial post-request script")
	fs.StringVar(&f.namespace, "namespace", "", "Instance storage namespace")
	fs.StringVar(&f.subscriptionsProvider, "subscriptions-provider", "", "Initial subscriptions provider id")
	fs.StringVar(&f.httpMethod, "http-method", "", "Initial HTTP method: POST|GET|PUT|DELETE")
	fs.BoolVar(&f.preserveState, "preserve-state", true, "Keep the state between sessions")
	fs.BoolVar(&f.disableAccount, "disable-account", false, "Disable the account features")
}

// options projects the explicitly given flags onto an Options layer.
func (f *optionFlags) options(fs *pflag.FlagSet) (*config.Options, error) {
	opts := &config.Options{}

	setString := func(name string, dst **string, v string) {
		if fs.Changed(name) {
			*dst = config.Ptr(v)
		}
	}
	setString("endpoint", &opts.EndpointURL, f.endpoint)
	setString("subscriptions-endpoint", &opts.SubscriptionsEndpoint, f.subscriptionsEndpoint)
	setString("subscriptions-protocol", &opts.SubscriptionsProtocol, f.subscriptionsProtocol)
	setString("query", &opts.InitialQuery, f.query)
	setString("variables", &opts.InitialVariables, f.variables)
	setString("pre-request-script", &opts.InitialPreRequestScript, f.preRequestScript)
	setString("post-request-script", &opts.InitialPostRequestScript, f.postRequestScript)
	setString("namespace", &opts.InstanceStorageNamespace, f.namespace)

	if fs.Changed("header") {
		opts.InitialHeaders = make(config.Headers, len(f.headers))
		for name, value := range f.headers {
			opts.InitialHeaders[name] = value
		}
	}
	if fs.Changed("subscriptions-provider") {
		opts.InitialSubscriptionsProvider = config.Ptr(config.SubscriptionProviderID(f.subscriptionsProvider))
	}
	if fs.Changed("http-method") {
		verb, err := parseHTTPVerb(f.httpMethod)
		if err != nil {
			return nil, err
		}
		opts.InitialHTTPMethod = config.Ptr(verb)
	}
	if fs.Changed("preserve-state") {
		opts.PreserveState = config.Ptr(f.preserveState)
	}
	if fs.Changed("disable-account") {
		opts.DisableAccount = config.Ptr(f.disableAccount)
	}

	return opts, nil
}

func parseHTTPVerb(s string) (config.HTTPVerb, error) {
	verb := config.HTTPVerb(strings.ToUpper(strings.TrimSpace(s)))
	switch verb {
	case config.HTTPVerbPost, config.HTTPVerbGet, config.HTTPVerbPut, config.HTTPVerbDelete:
		return verb, nil
	}
	return "", fmt.Errorf("%w: %q", errInvalidHTTPMethod, s)
}

// resolve builds the configuration from the environment (and host file),
// the options file and the flags, then makes it the active one.
func (f *optionFlags) resolve(cmd *cobra.Command) (*config.Config, error) {
	host, err := config.LoadHostOverrides()
	if err != nil {
		return nil, err
	}

	fromFlags, err := f.options(cmd.Flags())
	if err != nil {
		return nil, err
	}

	var fromFile *config.Options
	if f.optionsFile != "" {
		if fromFile, err = config.LoadOptions(f.optionsFile); err != nil {
			return nil, err
		}
	}

	opts, err := config.MergeOptions(fromFlags, fromFile)
	if err != nil {
		return nil, fmt.Errorf("merge options: %w", err)
	}

	cfg := config.New(opts, host)
	config.SetActive(cfg)
	return cfg, nil
}
