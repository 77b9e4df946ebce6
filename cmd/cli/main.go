package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "corpledger-cli",
		Short: "Corporate ledger CLI tool",
		Long:  `A command line interface for interacting with the corpledger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the corpledger API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(entryCmd("income", "incomes"))
	rootCmd.AddCommand(entryCmd("expense", "expenses"))
	rootCmd.AddCommand(reportCmd())
	rootCmd.AddCommand(closeCmd())
	rootCmd.AddCommand(archivesCmd())
	rootCmd.AddCommand(balanceCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func entryCmd(kind, resource string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   kind,
		Short: fmt.Sprintf("%s entry operations", kind),
	}

	var (
		description string
		amount      string
		category    string
		date        string
		account     string
		department  string
		client      string
		supplier    string
		entryType   string
		invoice     string
	)

	addCmd := &cobra.Command{
		Use:   "add",
		Short: fmt.Sprintf("Add an %s entry", kind),
		Run: func(cmd *cobra.Command, args []string) {
			body := map[string]any{
				"description": description,
				"amount":      json.Number(amount),
				"category":    category,
				"date":        date,
				"account":     account,
				"department":  department,
			}
			if client != "" {
				body["client"] = client
			}
			if supplier != "" {
				body["supplier"] = supplier
			}
			if entryType != "" {
				body["type"] = entryType
			}
			if invoice != "" {
				body["invoice"] = invoice
			}
			doRequest(http.MethodPost, "/api/v1/"+resource, body)
		},
	}
	addCmd.Flags().StringVar(&description, "description", "", "Entry description")
	addCmd.Flags().StringVar(&amount, "amount", "0", "Entry amount")
	addCmd.Flags().StringVar(&category, "category", "", "Entry category")
	addCmd.Flags().StringVar(&date, "date", time.Now().Format("2006-01-02"), "Entry date (YYYY-MM-DD)")
	addCmd.Flags().StringVar(&account, "account", "", "Bank account")
	addCmd.Flags().StringVar(&department, "department", "", "Department")
	addCmd.Flags().StringVar(&invoice, "invoice", "", "Fiscal document reference")
	if kind == "income" {
		addCmd.Flags().StringVar(&client, "client", "", "Client")
	} else {
		addCmd.Flags().StringVar(&supplier, "supplier", "", "Supplier")
		addCmd.Flags().StringVar(&entryType, "type", "", "fixed or variable (inferred when empty)")
	}

	var (
		from       string
		to         string
		filterCat  string
		filterDept string
		min        string
		max        string
	)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List %s entries", kind),
		Run: func(cmd *cobra.Command, args []string) {
			query := url.Values{}
			setIfPresent(query, "from", from)
			setIfPresent(query, "to", to)
			setIfPresent(query, "category", filterCat)
			setIfPresent(query, "department", filterDept)
			setIfPresent(query, "min", min)
			setIfPresent(query, "max", max)

			path := "/api/v1/" + resource
			if len(query) > 0 {
				path += "?" + query.Encode()
			}
			doRequest(http.MethodGet, path, nil)
		},
	}
	listCmd.Flags().StringVar(&from, "from", "", "Inclusive lower date bound (YYYY-MM-DD)")
	listCmd.Flags().StringVar(&to, "to", "", "Inclusive upper date bound (YYYY-MM-DD)")
	listCmd.Flags().StringVar(&filterCat, "category", "", "Exact category match")
	listCmd.Flags().StringVar(&filterDept, "department", "", "Exact department match")
	listCmd.Flags().StringVar(&min, "min", "", "Inclusive minimum amount")
	listCmd.Flags().StringVar(&max, "max", "", "Inclusive maximum amount")

	deleteCmd := &cobra.Command{
		Use:   "delete [id]",
		Short: fmt.Sprintf("Delete an %s entry", kind),
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodDelete, "/api/v1/"+resource+"/"+args[0], nil)
		},
	}

	cmd.AddCommand(addCmd, listCmd, deleteCmd)
	return cmd
}

func reportCmd() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Build a report for a date range",
		Run: func(cmd *cobra.Command, args []string) {
			query := url.Values{}
			query.Set("from", from)
			query.Set("to", to)
			doRequest(http.MethodGet, "/api/v1/report?"+query.Encode(), nil)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "Inclusive lower date bound (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Inclusive upper date bound (YYYY-MM-DD)")
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")
	return cmd
}

func closeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "close",
		Short: "Trigger the monthly close check",
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodPost, "/api/v1/close", nil)
		},
	}
}

func archivesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archives [period]",
		Short: "List archived periods, or show one by label",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			path := "/api/v1/archives"
			if len(args) == 1 {
				path += "/" + args[0]
			}
			doRequest(http.MethodGet, path, nil)
		},
	}
	return cmd
}

func balanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show the current corporate balance",
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodGet, "/api/v1/balance", nil)
		},
	}
}

func setIfPresent(query url.Values, key, value string) {
	if value != "" {
		query.Set(key, value)
	}
}

func doRequest(method, path string, body any) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			fmt.Printf("Error encoding request: %v\n", err)
			os.Exit(1)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, baseURL+path, reader)
	if err != nil {
		fmt.Printf("Error building request: %v\n", err)
		os.Exit(1)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		fmt.Printf("Request FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(raw))
		os.Exit(1)
	}

	if len(raw) == 0 {
		fmt.Println("OK")
		return
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err != nil {
		fmt.Println(string(raw))
		return
	}
	fmt.Println(pretty.String())
}
