package plugin

const homesYAML = `
name: Homes
version: 1.4.0
main: com.example.homes.HomesPlugin
description: Set and visit homes
authors: [alice, bob]
api-version: "1.20"
commands:
  home:
    description: Teleport home
    usage: /home [name]
    aliases: [h, "sethome -f set"]
    permission: homes.use
    subcommands:
      - name: set
        aliases: s
        permission: homes.set
      - name: delete
        aliases: [del, rm]
  homes:
    description: List homes
`
