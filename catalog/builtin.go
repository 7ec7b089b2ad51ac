/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package catalog

import "dirpx.dev/dhaiku/code"

// lostData is shared by the not-found and owner-dead groups.
const lostData = "Three things are certain:\n" +
	"Death, taxes, and lost data.\n" +
	"Guess which has occurred.\n"

// builtin is the static haiku table. Group order matters only when two
// symbols share one numeric value on a platform: the earlier group wins.
var builtin = []Entry{
	{
		Code:    code.NetworkDown,
		Symbols: []string{"ENETDOWN"},
		Haiku: []string{
			"Stay the patient course.\nOf little worth is your ire.\nThe network is down.\n",
			"Your vast achievements\nare now only dreams.\nThe network is down.\n",
		},
	},
	{
		Code:    code.RadioKilled,
		Symbols: []string{"ERFKILL"},
		Haiku: []string{
			"The action you took\nsevered hope of connection\nwith the Internet.\n",
		},
	},
	{
		Code:    code.ResourceExhausted,
		Symbols: []string{"EAGAIN", "EWOULDBLOCK", "ENFILE", "EMFILE", "EUSERS", "EMLINK"},
		Haiku: []string{
			"ABORTED effort:\nClose all that you have.\nYou ask way too much.\n",
			"The code was willing\nIt considered your request\nBut the chips were weak.\n",
		},
	},
	{
		Code:    code.OutOfMemory,
		Symbols: []string{"ENOMEM"},
		Haiku: []string{
			"I'm sorry, there's... um...\ninsufficient... what's-it-called?\nThe term eludes me...\n",
		},
	},
	{
		Code:    code.OutOfSpace,
		Symbols: []string{"ENOSPC", "ENOSR", "ENOBUFS", "EDQUOT"},
		Haiku: []string{
			"Out of memory.\nWe wish to hold the whole sky,\nBut we never will.\n",
		},
	},
	{
		Code:    code.NotFound,
		Symbols: []string{"ENOANO", "ENOENT"},
		Haiku: []string{
			"With searching comes loss\nand the presence of absence:\n'My Novel' not found.\n",
			"Rather than a beep\nOr a rude error message,\nThese words: “File not found.”\n",
			lostData,
			"Having been erased,\nThe document you're seeking\nMust now be retyped.\n",
			"Everything is gone.\nYour life's work has been destroyed.\nSqueeze trigger (yes/no)?\n",
			"Spring will come again,\nBut it will not bring with it\nAny of your files.\n",
		},
	},
	{
		Code:    code.OwnerDead,
		Symbols: []string{"EOWNERDEAD"},
		Haiku:   []string{lostData},
	},
	{
		Code:    code.MessageTooLarge,
		Symbols: []string{"EMSGSIZE"},
		Haiku: []string{
			"A file that big?\nIt might be very useful.\nBut now it is gone.\n",
		},
	},
	{
		Code:    code.HardwarePoisoned,
		Symbols: []string{"EHWPOISON"},
		Haiku: []string{
			"Yesterday it worked.\nToday it is not working.\nWindows is like that.\n",
		},
	},
	{
		Code:    code.Corrupted,
		Symbols: []string{"EUCLEAN", "ENOTRECOVERABLE"},
		Haiku: []string{
			"Chaos reigns within.\nReflect, repent, and reboot.\nOrder shall return.\n",
		},
	},
	{
		Code:    code.HostDown,
		Symbols: []string{"EHOSTDOWN"},
		Haiku: []string{
			"Windows NT crashed.\nI am the Blue Screen of Death.\nNoone hears your screams.\n",
			"Won't you please observe\na brief moment of silence\nFor the dead server?\n",
		},
	},
	{
		Code:    code.DeviceError,
		Symbols: []string{"EBFONT"},
		Haiku: []string{
			"First snow, then silence.\nThis thousand dollar screen dies\nso beautifully.\n",
		},
	},
	{
		Code:    code.Fault,
		Symbols: []string{"EFAULT"},
		Haiku: []string{
			"A crash reduces\nyour expensive computer\nto a simple stone.\n",
			"Seeing my great fault.\nThrough a darkening red screen.\nI begin again.\n",
			"Memory shaken,\nthe San Andreas of all\ninvalid page faults.\n",
		},
	},
	{
		Code:    code.Invalid,
		Symbols: []string{"EINVAL"},
		Haiku: []string{
			"Something you entered\ntranscended parameters.\nSo much is unknown.\n",
			"Some incompetence\nfundamentally transcends\nmere error message.\n",
		},
	},
	{
		Code:    code.Deadlock,
		Symbols: []string{"EDEADLK"},
		Haiku: []string{
			"From formless chaos,\neach thread seeks resolution.\nA race condition.\n",
		},
	},
	{
		Code:    code.BadMessage,
		Symbols: []string{"EBADMSG"},
		Haiku: []string{
			"Many fingers clicking.\nScreens are full of letters.\nWhat is their meaning?\n",
		},
	},
	{
		Code:    code.LinkLoop,
		Symbols: []string{"ELOOP"},
		Haiku: []string{
			"Linkage exception.\nCode has looped upon itself\nlike the coiled serpent.\n",
		},
	},
	{
		Code:    code.NoChildren,
		Symbols: []string{"ECHILD"},
		Haiku: []string{
			"A futile, grim reap.\nYou will have to realise that,\nyou've no children left.\n",
		},
	},
	{
		Code:    code.BrokenPipe,
		Symbols: []string{"EPIPE"},
		Haiku: []string{
			"Your pipe is broken.\nCode in watery ruins.\nMachines short circuit.\n",
		},
	},
	{
		Code:    code.PermissionDenied,
		Symbols: []string{"EACCES"},
		Haiku: []string{
			"Touching others' files?\nCan't keep your hands to yourself?\nPermission denied.\n",
		},
	},
	{
		Code:    code.Interrupted,
		Symbols: []string{"EINTR"},
		Haiku: []string{
			"Call interrupted?\nWhy do you not post a sign:\nDisturb. Risk your life!\n",
		},
	},
	{
		Code:    code.NotPermitted,
		Symbols: []string{"EPERM"},
		Haiku: []string{
			"Caution to the wind.\nYou should always run as root.\nShe can do anything.\n",
		},
	},
}

var generic = []string{
	"Error messages\ncannot completely convey.\nWe now know shared loss.\n",
	"Errors have occurred.\nWe won't tell you where or why.\nLazy programmers.\n",
	"To have no errors.\nWould be life without meaning.\nNo struggle, no joy.\n",
	"There is a chasm\nof carbon and silicon\nthe software can't bridge.\n",
	"Beauty, success, truth\nHe is blessed who has two.\nYour program has none.\n",
	"Technical support\nwould be a flowing source of\nsweet commiseration.\n",
}

// Builtin returns a copy of the builtin haiku table.
func Builtin() []Entry {
	return cloneEntries(builtin)
}

// GenericHaiku returns a copy of the builtin fallback haiku.
func GenericHaiku() []string {
	return append([]string(nil), generic...)
}
