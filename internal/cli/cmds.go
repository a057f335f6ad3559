package cli

func regCommands() {
	//Keys
	keysCmd.AddCommand(keys_generateCmd)
	keysCmd.AddCommand(keys_listCmd)

	//Channels
	channelsCmd.AddCommand(channels_listCmd)
	channelsCmd.AddCommand(channels_claimCmd)

	//State
	stateCmd.AddCommand(state_showCmd)

	//Root
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(stateCmd)
	rootCmd.AddCommand(channelsCmd)
}
