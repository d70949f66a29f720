package template

import (
	"context"
	"flag"
	"fmt"

	"github.com/access-grid/accessgrid-go/internal/cmd/base"
	"github.com/access-grid/accessgrid-go/internal/config"
	"github.com/access-grid/accessgrid-go/pkg/accessgrid"
	"github.com/access-grid/accessgrid-go/pkg/auditexport"
)

type eventPublisher interface {
	Publish(ctx context.Context, accountID, templateID string, events []accessgrid.Event) (int, error)
	Close()
}

// newPublisher is replaced in tests.
var newPublisher = func(cfg auditexport.Config) (eventPublisher, error) {
	return auditexport.NewPublisher(cfg)
}

// LogsCommand prints a template event log and can export it to Kafka.
type LogsCommand struct {
	*base.Command

	flagConfig       string
	flagDevice       string
	flagEventType    string
	flagStart        string
	flagEnd          string
	flagExport       bool
	flagKafkaBrokers string
	flagKafkaTopic   string
}

func (c *LogsCommand) Synopsis() string {
	return "Print the event log of a card template"
}

func (c *LogsCommand) Help() string {
	return `Usage: accessgrid template logs [options] TEMPLATE_ID

  Prints the audit events recorded for a template. With -export, the events
  are also published to Kafka, one record per event keyed by template id.
  Brokers come from -kafka-brokers or the audit_export block of the config
  file.` + c.Flags().Help()
}

func (c *LogsCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("template logs", flag.ContinueOnError))

	base.ConfigFlag(f, &c.flagConfig)
	f.StringVar(&c.flagDevice, "device", "", "Only show events for this device platform, e.g. mobile or watch")
	f.StringVar(&c.flagEventType, "event-type", "", "Only show events of this type, e.g. install")
	f.StringVar(&c.flagStart, "start", "", "Only show events at or after this date")
	f.StringVar(&c.flagEnd, "end", "", "Only show events at or before this date")
	f.BoolVar(&c.flagExport, "export", false, "Publish the events to Kafka")
	f.StringVar(&c.flagKafkaBrokers, "kafka-brokers", "", "Comma separated Kafka seed brokers")
	f.StringVar(&c.flagKafkaTopic, "kafka-topic", "", "Kafka topic, defaults to "+auditexport.DefaultTopic)

	return f
}

func (c *LogsCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	id, ok := c.SingleArg(f, "TEMPLATE_ID")
	if !ok {
		return 1
	}

	filters := &accessgrid.EventLogFilters{
		Device:    c.flagDevice,
		EventType: c.flagEventType,
	}
	var err error
	if filters.StartDate, err = base.ParseTime(c.flagStart); err != nil {
		return c.Fail("error parsing start flag", err)
	}
	if filters.EndDate, err = base.ParseTime(c.flagEnd); err != nil {
		return c.Fail("error parsing end flag", err)
	}

	client, cfg := c.NewClient(c.flagConfig)
	if client == nil {
		return 1
	}

	ctx := c.Context()
	events, err := client.Console().EventLog(ctx, id, filters)
	if err != nil {
		return c.Fail("error reading event log", err)
	}

	if err := c.PrintJSON(events); err != nil {
		return c.Fail("error printing events", err)
	}

	if !c.flagExport {
		return 0
	}

	exportCfg := auditexport.Config{Logger: c.Log}
	if cfg.AuditExport != nil {
		exportCfg = *cfg.AuditExport
	}
	if c.flagKafkaBrokers != "" {
		exportCfg.Brokers = config.SplitBrokers(c.flagKafkaBrokers)
	}
	if c.flagKafkaTopic != "" {
		exportCfg.Topic = c.flagKafkaTopic
	}

	pub, err := newPublisher(exportCfg)
	if err != nil {
		return c.Fail("error creating audit exporter", err)
	}
	defer pub.Close()

	n, err := pub.Publish(ctx, client.AccountID(), id, events)
	if err != nil {
		return c.Fail(fmt.Sprintf("error exporting events (%d of %d published)", n, len(events)), err)
	}

	c.UI.Info(fmt.Sprintf("Exported %d events", n))
	return 0
}
