// Copyright 2012-2015 Canonical Ltd.
// Licensed under the LGPLv3, see LICENSE file for details.

package cmd

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/juju/errors"
	"github.com/juju/gnuflag"
)

type helpCommand struct {
	CommandBase
	super  *SuperCommand
	topic  string
	topics map[string]topic

	target *commandReference
}

func (c *helpCommand) init() {
	c.topics = map[string]topic{
		"commands": {
			short: "Basic help for all commands",
			long:  func() string { return c.describeCommands() },
		},
		"global-options": {
			short: "Options common to all commands",
			long:  func() string { return c.globalOptions() },
		},
		"topics": {
			short: "Topic list",
			long:  func() string { return c.topicList() },
		},
	}
}

func echo(s string) func() string {
	return func() string { return s }
}

func (c *helpCommand) addTopic(name, short string, long func() string) {
	if _, found := c.topics[name]; found {
		panic(fmt.Sprintf("help topic already added: %s", name))
	}
	c.topics[name] = topic{short, long}
}

func (c *helpCommand) describeCommands() string {
	commands := c.super.describeCommands()

	// Sort command names, and work out length of the longest one
	cmdNames := make([]string, 0, len(commands))
	longest := 0
	for name := range commands {
		if len(name) > longest {
			longest = len(name)
		}
		cmdNames = append(cmdNames, name)
	}
	sort.Strings(cmdNames)

	var descr []string
	for _, name := range cmdNames {
		descr = append(descr, fmt.Sprintf("%-*s  %s", longest, name, commands[name]))
	}
	return strings.Join(descr, "\n")
}

func (c *helpCommand) globalOptions() string {
	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, `Global Options

These options may be used with any command, and may appear in front of any
command.

`)

	f := gnuflag.NewFlagSet("", gnuflag.ContinueOnError)
	c.super.SetCommonFlags(f)
	f.SetOutput(buf)
	f.PrintDefaults()
	return buf.String()
}

func (c *helpCommand) topicList() string {
	var topics []string
	longest := 0
	for name := range c.topics {
		if len(name) > longest {
			longest = len(name)
		}
		topics = append(topics, name)
	}
	sort.Strings(topics)
	for i, name := range topics {
		topics[i] = fmt.Sprintf("%-*s  %s", longest, name, c.topics[name].short)
	}
	return strings.Join(topics, "\n")
}

func (c *helpCommand) Info() *Info {
	return &Info{
		Name:    "help",
		Args:    "[topic]",
		Purpose: helpPurpose,
		Doc: `
See also: topics
`,
	}
}

func (c *helpCommand) Init(args []string) error {
	logger.Tracef("helpCommand.Init: %#v", args)
	if len(args) == 0 {
		return nil
	}
	if len(args) > 1 {
		return errors.Errorf("extra arguments to command help: %q", args[1:])
	}
	c.topic = args[0]
	if commandRef, ok := c.super.subcmds[c.topic]; ok {
		c.target = &commandRef
	}
	return nil
}

func (c *helpCommand) getCommandHelp(command Command, alias string) []byte {
	info := command.Info()
	if alias == "" {
		info.Name = fmt.Sprintf("%s %s", c.super.Name, info.Name)
	} else {
		info.Name = fmt.Sprintf("%s %s", c.super.Name, alias)
	}

	f := gnuflag.NewFlagSet(info.Name, gnuflag.ContinueOnError)
	command.SetFlags(f)

	superf := gnuflag.NewFlagSet(c.super.Name, gnuflag.ContinueOnError)
	c.super.SetCommonFlags(superf)
	return info.HelpWithSuperFlags(superf, f)
}

func (c *helpCommand) Run(ctx *Context) error {
	if c.super.showVersion {
		v := newVersionCommand(c.super.version)
		return v.Run(ctx)
	}

	// If the topic is a registered subcommand, then run the help command with it
	if c.target != nil {
		_, err := ctx.Stdout.Write(c.getCommandHelp(c.target.command, c.target.alias))
		return err
	}

	// If there is no help topic specified, print basic usage.
	if c.topic == "" {
		// At this point, "help" is selected as the SuperCommand's
		// current action, but we want the info to be printed
		// as if there was nothing selected.
		c.super.action.command = nil
		f := gnuflag.NewFlagSet(c.super.Name, gnuflag.ContinueOnError)
		c.super.SetFlags(f)
		_, err := ctx.Stdout.Write(c.super.Info().Help(f))
		return err
	}

	// Look to see if the topic is a registered topic.
	if topic, ok := c.topics[c.topic]; ok {
		_, err := fmt.Fprintf(ctx.Stdout, "%s\n", strings.TrimSpace(topic.long()))
		return err
	}
	return errors.Errorf("unknown command or topic for %s", c.topic)
}
