package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
)

func (a *app) loginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "store an API bearer token",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "token", Usage: "token value; read from stdin when omitted"},
		},
		Action: func(c *cli.Context) error {
			token := c.String("token")
			if token == "" {
				fmt.Fprint(os.Stderr, "token: ")
				line, err := bufio.NewReader(os.Stdin).ReadString('\n')
				if err != nil {
					return err
				}
				token = strings.TrimSpace(line)
			}
			if token == "" {
				return errors.New("no token provided")
			}
			if err := a.tokens.Save(token); err != nil {
				return err
			}
			fmt.Println("token stored")
			return nil
		},
	}
}

func (a *app) logoutCommand() *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "forget the stored token",
		Action: func(*cli.Context) error {
			if err := a.tokens.Clear(); err != nil {
				return err
			}
			fmt.Println("token cleared")
			return nil
		},
	}
}
