/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package main

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/asgardeo/wikimediator/internal/client"
	"github.com/asgardeo/wikimediator/internal/server"
	"github.com/asgardeo/wikimediator/internal/system/constants"
)

const defaultAddress = "localhost:4949"

type clientOptions struct {
	address  string
	timeout  time.Duration
	limit    int
	useTLS   bool
	insecure bool
}

// newRootCmd builds the command tree. Every subcommand sends one request and prints the
// response as JSON.
func newRootCmd() *cobra.Command {
	opts := &clientOptions{}

	rootCmd := &cobra.Command{
		Use:           "wikimediator-client",
		Short:         "Send requests to a WikiMediator server",
		SilenceUsage:  true,
	}
	rootCmd.PersistentFlags().StringVarP(&opts.address, "address", "a", defaultAddress, "Address of the request server")
	rootCmd.PersistentFlags().DurationVarP(&opts.timeout, "timeout", "t", 30*time.Second, "Request timeout")
	rootCmd.PersistentFlags().BoolVar(&opts.useTLS, "tls", false, "Connect over TLS")
	rootCmd.PersistentFlags().BoolVar(&opts.insecure, "insecure", false,
		"Skip verification of the server certificate")

	searchCmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search page titles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return send(cmd, opts, server.Request{Type: server.RequestTypeSearch, Query: &args[0],
				Limit: intPtr(opts.limit)})
		},
	}
	addLimitFlag(searchCmd, opts)

	pageCmd := &cobra.Command{
		Use:   "page [title]",
		Short: "Get the text of a page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return send(cmd, opts, server.Request{Type: server.RequestTypeGetPage, PageTitle: &args[0]})
		},
	}

	connectedCmd := &cobra.Command{
		Use:   "connected [title] [hops]",
		Short: "List pages reachable from a page within a number of hops",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			hops, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("hops must be an integer: %w", err)
			}
			return send(cmd, opts, server.Request{Type: server.RequestTypeGetConnectedPages,
				PageTitle: &args[0], Hops: &hops})
		},
	}

	pathCmd := &cobra.Command{
		Use:   "path [start] [stop]",
		Short: "Find the shortest link path between two pages",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return send(cmd, opts, server.Request{Type: server.RequestTypeGetPath,
				StartPage: args[0], StopPage: args[1]})
		},
	}

	zeitgeistCmd := &cobra.Command{
		Use:   "zeitgeist",
		Short: "List the most requested subjects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return send(cmd, opts, server.Request{Type: server.RequestTypeZeitgeist, Limit: intPtr(opts.limit)})
		},
	}
	addLimitFlag(zeitgeistCmd, opts)

	trendingCmd := &cobra.Command{
		Use:   "trending",
		Short: "List the most requested subjects in the recent window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return send(cmd, opts, server.Request{Type: server.RequestTypeTrending, Limit: intPtr(opts.limit)})
		},
	}
	addLimitFlag(trendingCmd, opts)

	peakLoadCmd := &cobra.Command{
		Use:   "peak-load",
		Short: "Show the highest number of requests seen in any window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return send(cmd, opts, server.Request{Type: server.RequestTypePeakLoad})
		},
	}

	rootCmd.AddCommand(searchCmd, pageCmd, connectedCmd, pathCmd, zeitgeistCmd, trendingCmd, peakLoadCmd)
	return rootCmd
}

func addLimitFlag(cmd *cobra.Command, opts *clientOptions) {
	cmd.Flags().IntVarP(&opts.limit, "limit", "l", constants.DefaultPageSize, "Maximum number of results")
}

func send(cmd *cobra.Command, opts *clientOptions, req server.Request) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
	defer cancel()

	var dialOpts []client.DialOption
	if opts.useTLS {
		dialOpts = append(dialOpts, client.WithTLS(&tls.Config{
			MinVersion:         tls.VersionTLS12,
			InsecureSkipVerify: opts.insecure, //nolint:gosec // Opt-in for self-signed development certificates.
		}))
	}

	c, err := client.Dial(ctx, opts.address, dialOpts...)
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	resp, err := c.Do(ctx, req)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(resp.Response, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}

func intPtr(i int) *int {
	return &i
}
