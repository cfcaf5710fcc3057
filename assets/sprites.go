package assets

import (
	"sort"

	"github.com/automoto/pixelplat/pixelart"
)

var (
	Brick = pixelart.NewDefinition("brick", []string{
		"DDDDDDDDDDDDDDDD",
		"DLLLLLDDLLLLLDDD",
		"DLLLLLDDLLLLLDDL",
		"DDDDDDDDDDDDDDDL",
		"DLDDLLLLLDDLLLLD",
		"DLDDLLLLLDDLLLLD",
		"DDDDDDDDDDDDDDDD",
		"DDDDDDDDDDDDDDDD",
		"DLLLLLDDLLLLLDDD",
		"DLLLLLDDLLLLLDDL",
		"DDDDDDDDDDDDDDDL",
		"DLDDLLLLLDDLLLLD",
		"DLDDLLLLLDDLLLLD",
		"DDDDDDDDDDDDDDDD",
		"DDDDDDDDDDDDDDDD",
		"DDDDDDDDDDDDDDDD",
	}, map[byte]pixelart.Ink{
		'D': pixelart.Paint(BrickDark),
		'L': pixelart.Paint(BrickLight),
	})

	Question = pixelart.NewDefinition("question", []string{
		"OSOOOOOOOOOOOOOS",
		"YOOOOOOOOOOOOOOY",
		"YOOYYYYYYYYYYOOY",
		"YOOYQQQQQYYYQYOY",
		"YOOYQYYYQYYYQQOY",
		"YOOYQYYYQYYYQYOY",
		"YOOYQYYYQYYYQYOY",
		"YOOYQQQQQYYYQYOY",
		"YOOYYYYYYYYYYYOY",
		"YOOYYYQQQYYYYYOY",
		"YOOYYYQQQYYYYYOY",
		"YOOYYYQQQYYYYYOY",
		"YOOYYYYYYYYYYYOY",
		"YOOOOOOOOOOOOOOY",
		"OSOOOOOOOOOOOOOS",
		"SSSSSSSSSSSSSSSS",
	}, map[byte]pixelart.Ink{
		'O': pixelart.Paint(QuestionOutline),
		'Y': pixelart.Paint(QuestionFill),
		'Q': pixelart.Paint(White),
		'S': pixelart.Paint(QuestionShadow),
	})

	Ground = pixelart.NewDefinition("ground", []string{
		"LLLLLLLLLLLLLLLL",
		"LLLLLLLLLLLLLLLL",
		"DDDDDDDDDDDDDDDD",
		"LDLDLDLDLDLDLDLD",
		"DLDLDLDLDLDLDLDL",
		"LLLLLLLLLLLLLLLL",
		"LLLLLLLLLLLLLLLL",
		"DDDDDDDDDDDDDDDD",
		"LDLDLDLDLDLDLDLD",
		"DLDLDLDLDLDLDLDL",
		"LLLLLLLLLLLLLLLL",
		"LLLLLLLLLLLLLLLL",
		"DDDDDDDDDDDDDDDD",
		"DDDDDDDDDDDDDDDD",
		"DDDDDDDDDDDDDDDD",
		"DDDDDDDDDDDDDDDD",
	}, map[byte]pixelart.Ink{
		'D': pixelart.Paint(GroundDark),
		'L': pixelart.Paint(GroundLight),
	})

	pipeInks = map[byte]pixelart.Ink{
		'L': pixelart.Paint(PipeGreenLight),
		'M': pixelart.Paint(PipeGreen),
		'D': pixelart.Paint(PipeGreenDark),
		'B': pixelart.Paint(Black),
		'X': pixelart.Transparent,
	}

	PipeTop = pixelart.NewDefinition("pipe_top", []string{
		"XXLLLLLLLLLLXX",
		"XLMMMMMMMMMMMX",
		"XMBBBBBBBBBBMX",
		"XMBBBBBBBBBBMX",
		"XMDMMMMMMMMDMX",
		"XMDMMMMMMMMDMX",
		"XMDMMMMMMMMDMX",
		"XMDMMMMMMMMDMX",
		"XMDMMMMMMMMDMX",
		"XMDMMMMMMMMDMX",
		"XMDMMMMMMMMDMX",
		"XMDMMMMMMMMDMX",
		"XMDMMMMMMMMDMX",
		"XMDMMMMMMMMDMX",
		"XMDMMMMMMMMDMX",
		"XMDDDDDDDDDDMX",
	}, pipeInks)

	PipeMiddle = pixelart.NewDefinition("pipe_middle", []string{
		"BLLLLLLLLLLLLLLB",
		"BLLLLLLLLLLLLLLB",
		"BMMMMMMMMMMMMMMB",
		"BMMMMMMMMMMMMMMB",
		"BMMMMMMMMMMMMMMB",
		"BMMMMMMMMMMMMMMB",
		"BMMMMMMMMMMMMMMB",
		"BMMMMMMMMMMMMMMB",
		"BMMMMMMMMMMMMMMB",
		"BMMMMMMMMMMMMMMB",
		"BMMMMMMMMMMMMMMB",
		"BMMMMMMMMMMMMMMB",
		"BMMMMMMMMMMMMMMB",
		"BMMMMMMMMMMMMMMB",
		"BMMMMMMMMMMMMMMB",
		"BDDDDDDDDDDDDDDB",
	}, pipeInks)

	FlagpoleBase = pixelart.NewDefinition("flagpole_base", []string{
		"DDDDDDDDDDDDDDDD",
		"DGGGGGGGGGGGGXXD",
		"DGGGGGGGGGGGGXXD",
		"DGGGGGGGGGGGGXXD",
		"DGGGGGGGGGGGGXXD",
		"DGGGGGGGGGGGGXXD",
		"DGGGGGGGGGGGGXXD",
		"DGGGGGGGGGGGGXXD",
		"DGGGGGGGGGGGGXXD",
		"DGGGGGGGGGGGGXXD",
		"DGGGGGGGGGGGGXXD",
		"DGGGGGGGGGGGGXXD",
		"DGGGGGGGGGGGGXXD",
		"DGGGGGGGGGGGGXXD",
		"DGGGGGGGGGGGGXXD",
		"DDDDDDDDDDDDDDDD",
	}, map[byte]pixelart.Ink{
		'G': pixelart.Paint(FlagpoleGray),
		'D': pixelart.Paint(FlagpoleDarkGray),
		'X': pixelart.Transparent,
	})

	// FlagpolePole is 2 pixels wide; the builder keeps that native width.
	FlagpolePole = pixelart.NewDefinition("flagpole_pole", []string{
		"LD", "LD", "LD", "LD", "LD", "LD", "LD", "LD",
		"LD", "LD", "LD", "LD", "LD", "LD", "LD", "LD",
	}, map[byte]pixelart.Ink{
		'L': pixelart.Paint(FlagpoleGray),
		'D': pixelart.Paint(FlagpoleDarkGray),
	})

	playerInks = map[byte]pixelart.Ink{
		'R': pixelart.Paint(MarioRed),
		'S': pixelart.Paint(SkinPeach),
		'B': pixelart.Paint(DarkBrown),
		'.': pixelart.Transparent,
	}

	PlayerStanding = pixelart.NewDefinition("player_standing", []string{
		"................",
		".....RRRRR......",
		"....RRRRRRRRR...",
		"....BBBSSBS.....",
		"...BSBSSSBSSS...",
		"...BSBBSSSBSSS..",
		"...BBSSSSBBBB...",
		".....SSSSSSS....",
		"....RRBRRR......",
		"...RRRBRRBRRR...",
		"..RRRRBBBBRRRR..",
		"..SSRBSBBSBRSS..",
		"..SSSBBBBBBSSS..",
		"..SSBBBBBBBBSS..",
		"....BBB..BBB....",
		"...BBBB..BBBB...",
	}, playerInks)

	PlayerWalking = pixelart.NewDefinition("player_walking", []string{
		"................",
		".....RRRRR......",
		"....RRRRRRRRR...",
		"....BBBSSBS.....",
		"...BSBSSSBSSS...",
		"...BSBBSSSBSSS..",
		"...BBSSSSBBBB...",
		".....SSSSSSS....",
		"....RRBRRR......",
		"...RRRBRRBRRR...",
		"..RRRRBBBBRRRR..",
		"..SSRBSBBSBRSS..",
		"..SSBBBBBBB.....",
		"...BBBBBBBBB....",
		"..BBB....BBB....",
		"..BBBB....BBBB..",
	}, playerInks)

	PlayerJumping = pixelart.NewDefinition("player_jumping", []string{
		"..............SS",
		".....RRRRR...SSS",
		"....RRRRRRRRRSSS",
		"....BBBSSBS..BBB",
		"...BSBSSSBSSBBBB",
		"...BSBBSSSBSSSBB",
		"...BBSSSSBBBBBB.",
		".....SSSSSSSBB..",
		"..RRRRRBRRRBB...",
		".RRRRRRRBRRRB..B",
		"SSRRRRRRBBBBB..B",
		"SSS.RRBSBBSBBBBB",
		".S.BBBBBBBBBBBBB",
		"..BBBBBBBBBBBBBB",
		".BBBBBBB.BBBBB..",
		".BBB............",
	}, playerInks)
)

var sprites = map[string]*pixelart.Definition{}

func init() {
	for _, def := range []*pixelart.Definition{
		Brick, Question, Ground, PipeTop, PipeMiddle, FlagpoleBase, FlagpolePole,
		PlayerStanding, PlayerWalking, PlayerJumping,
	} {
		sprites[def.Name()] = def
	}
}

// Sprite looks up a sprite by name.
func Sprite(name string) (*pixelart.Definition, bool) {
	def, ok := sprites[name]
	return def, ok
}

// SpriteNames returns every sprite name, sorted.
func SpriteNames() []string {
	names := make([]string, 0, len(sprites))
	for name := range sprites {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
