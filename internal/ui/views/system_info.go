package views

import "github.com/pterm/pterm"

type SystemInfoItem struct {
	ConfigPath       string
	DBPath           string
	DBExists         bool // true = Found, false = Not Found
	ListenAddr       string
	LogLevel         string
	TransactionLimit int
	AppDataDir       string
}

func RenderSystemInfo(data SystemInfoItem) error {
	dbStatus := pterm.Green("Found")
	if !data.DBExists {
		dbStatus = pterm.Red("Not Found (Will be created)")
	}

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Database Path", data.DBPath},
		{"Database Status", dbStatus},
		{"Listen Address", data.ListenAddr},
		{"Log Level", data.LogLevel},
		{"Default History Limit", pterm.Sprint(data.TransactionLimit)},
		{"AppData Directory", data.AppDataDir},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
